// Package jobparse extracts structured job postings from captured job-board
// pages and classifies their descriptions into coarse requirement categories
// (education, major, experience, industry).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package jobparse
