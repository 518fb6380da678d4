package tagging

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// keywordsFile is the on-disk layout of a keyword table:
//
//	keywords:
//	  on reveal: On Reveal
//	  destroy: Destroy
type keywordsFile struct {
	Keywords map[string]string `yaml:"keywords"`
}

// LoadKeywordsFile reads a YAML keyword table.
func LoadKeywordsFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keywords file: %w", err)
	}
	defer f.Close()

	return ReadKeywords(f)
}

func ReadKeywords(r io.Reader) (map[string]string, error) {
	var kf keywordsFile

	if err := yaml.NewDecoder(r).Decode(&kf); err != nil {
		return nil, fmt.Errorf("decode keywords: %w", err)
	}

	if len(kf.Keywords) == 0 {
		return nil, fmt.Errorf("keywords table is empty")
	}

	return kf.Keywords, nil
}

// WriteKeywords writes keywords in the layout LoadKeywordsFile reads.
// Entries come out sorted by phrase.
func WriteKeywords(w io.Writer, keywords map[string]string) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(keywordsFile{Keywords: keywords}); err != nil {
		return err
	}
	return enc.Close()
}
