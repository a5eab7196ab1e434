package model

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Case is a single expression expectation. Exactly one of Want and Error
// applies: Want is compared against the string conversion of the result,
// Error marks a case whose evaluation must fail.
type Case struct {
	Name  string `yaml:"name"`
	Expr  string `yaml:"expr"`
	Want  string `yaml:"want"`
	Error bool   `yaml:"error,omitempty"`
}

// Suite is a named list of expression cases loaded from a YAML file.
type Suite struct {
	Name  string  `yaml:"name"`
	Cases []*Case `yaml:"cases"`
}

// ReadCaseFile loads a case suite from a YAML file
func ReadCaseFile(path string) (*Suite, error) {
	log.Debugf("Reading case suite from '%s'", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open case file %s", path)
	}
	defer f.Close()

	suite, err := ReadSuite(f)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read case file %s", path)
	}
	return suite, nil
}

// ReadSuite decodes a case suite from YAML
func ReadSuite(in io.Reader) (*Suite, error) {
	suite := new(Suite)
	if err := yaml.NewDecoder(in).Decode(suite); err != nil {
		return nil, errors.Wrap(err, "unable to decode case suite")
	}

	if len(suite.Cases) == 0 {
		return nil, errors.New("case suite has no cases")
	}
	for i, c := range suite.Cases {
		if c.Expr == "" {
			return nil, errors.Errorf("case %d (%s) has no expression", i, c.Name)
		}
		if c.Error && c.Want != "" {
			return nil, errors.Errorf("case %d (%s) sets both want and error", i, c.Name)
		}
	}

	return suite, nil
}
