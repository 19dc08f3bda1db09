package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonyzdev/jobparse"
	"github.com/tonyzdev/jobparse/schema"
)

const validPostings = `[
  {
    "filename": "a.html",
    "job_title": "Data Analyst",
    "company": "Acme",
    "location": null,
    "salary": "$50,000 a year",
    "job_type": "Full-time",
    "scraped_at": "2024-01-01",
    "full_description": "Analyze data.",
    "apply_method": "external_apply",
    "apply_url": "https://example.com/applystart?jk=1"
  },
  {
    "filename": "b.html",
    "job_title": null,
    "company": null,
    "location": null,
    "salary": null,
    "job_type": null,
    "scraped_at": null,
    "full_description": null,
    "apply_method": null,
    "apply_url": null
  }
]`

const validRequirements = `[
  {
    "job_title": "Data Analyst",
    "company": "Acme",
    "location": "",
    "salary": "",
    "job_type": "Full-time",
    "education": "Bachelor's",
    "major": "Statistics",
    "experience": "2+ years",
    "industry": "",
    "apply_method": "indeed_apply",
    "apply_url": "",
    "url": ""
  }
]`

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid postings", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, schema.Validate(schema.KindPostings, []byte(validPostings)))
	})

	t.Run("accepts valid requirements", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, schema.Validate(schema.KindRequirements, []byte(validRequirements)))
	})

	t.Run("accepts an empty list", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, schema.Validate(schema.KindPostings, []byte(`[]`)))
		assert.NoError(t, schema.Validate(schema.KindRequirements, []byte(`[]`)))
	})

	t.Run("rejects unknown apply method", func(t *testing.T) {
		t.Parallel()

		doc := `[{"filename":"a.html","job_title":null,"company":null,"location":null,"salary":null,
			"job_type":null,"scraped_at":null,"full_description":null,"apply_method":"email","apply_url":null}]`

		err := schema.Validate(schema.KindPostings, []byte(doc))

		require.Error(t, err)
		assert.Equal(t, jobparse.EINVALID, jobparse.ErrorCode(err))
		var ve *schema.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, schema.KindPostings, ve.Kind)
		assert.NotEmpty(t, ve.Errors)
	})

	t.Run("rejects apply url without external apply", func(t *testing.T) {
		t.Parallel()

		doc := `[{"filename":"a.html","job_title":null,"company":null,"location":null,"salary":null,
			"job_type":null,"scraped_at":null,"full_description":null,"apply_method":"indeed_apply",
			"apply_url":"https://example.com"}]`

		err := schema.Validate(schema.KindPostings, []byte(doc))

		assert.Equal(t, jobparse.EINVALID, jobparse.ErrorCode(err))
	})

	t.Run("rejects missing requirement columns", func(t *testing.T) {
		t.Parallel()

		err := schema.Validate(schema.KindRequirements, []byte(`[{"job_title":"x"}]`))

		require.Error(t, err)
		var ve *schema.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, err.Error(), "requirements validation failed")
	})

	t.Run("rejects non-list documents", func(t *testing.T) {
		t.Parallel()

		err := schema.Validate(schema.KindPostings, []byte(`{"filename":"a.html"}`))

		require.Error(t, err)
		var ve *schema.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "(root)", ve.Errors[0].Field)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		t.Parallel()

		err := schema.Validate(schema.Kind("resume"), []byte(`[]`))

		assert.Equal(t, jobparse.EINVALID, jobparse.ErrorCode(err))
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("detects postings by filename", func(t *testing.T) {
		t.Parallel()

		kind, err := schema.Check([]byte(validPostings))

		require.NoError(t, err)
		assert.Equal(t, schema.KindPostings, kind)
	})

	t.Run("detects requirements", func(t *testing.T) {
		t.Parallel()

		kind, err := schema.Check([]byte(validRequirements))

		require.NoError(t, err)
		assert.Equal(t, schema.KindRequirements, kind)
	})

	t.Run("fails on malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := schema.Check([]byte(`[{`))

		assert.Equal(t, jobparse.EINVALID, jobparse.ErrorCode(err))
	})
}
