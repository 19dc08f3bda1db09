// Package yaml loads classifier reference tables from YAML documents.
package yaml

import (
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tonyzdev/jobparse"
	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabulary string

// vocabularyFile is the on-disk shape of a vocabulary document.
type vocabularyFile struct {
	Majors     []string       `yaml:"majors" validate:"dive,required"`
	Industries []industryFile `yaml:"industries" validate:"dive"`
}

type industryFile struct {
	Label    string        `yaml:"label" validate:"required"`
	Keywords []keywordFile `yaml:"keywords" validate:"min=1,dive"`
}

type keywordFile struct {
	Keyword string `yaml:"keyword" validate:"required"`
	Scope   string `yaml:"scope" validate:"required,oneof=description company"`
}

// DefaultVocabulary returns the vocabulary bundled with the binary.
func DefaultVocabulary() (*jobparse.Vocabulary, error) {
	return DecodeVocabulary(strings.NewReader(defaultVocabulary))
}

// LoadVocabulary reads a vocabulary document from path.
func LoadVocabulary(path string) (*jobparse.Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, jobparse.Errorf(jobparse.EINVALID, "open vocabulary: %v", err)
	}
	defer f.Close()

	return DecodeVocabulary(f)
}

// DecodeVocabulary parses and validates a vocabulary document.
func DecodeVocabulary(r io.Reader) (*jobparse.Vocabulary, error) {
	var file vocabularyFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, jobparse.Errorf(jobparse.EINVALID, "invalid vocabulary document: %v", err)
	}

	if err := validator.New().Struct(&file); err != nil {
		return nil, jobparse.Errorf(jobparse.EINVALID, "invalid vocabulary: %v", err)
	}

	industries := make([]jobparse.Industry, 0, len(file.Industries))
	for _, ind := range file.Industries {
		keywords := make([]jobparse.IndustryKeyword, 0, len(ind.Keywords))
		for _, kw := range ind.Keywords {
			keywords = append(keywords, jobparse.IndustryKeyword{
				Keyword: kw.Keyword,
				Scope:   jobparse.Scope(kw.Scope),
			})
		}
		industries = append(industries, jobparse.Industry{Label: ind.Label, Keywords: keywords})
	}

	return jobparse.NewVocabulary(file.Majors, industries)
}
