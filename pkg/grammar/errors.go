package grammar

import (
	"errors"

	"github.com/Manu343726/spvgen/pkg/utils"
)

// Returned when the grammar document lacks a field required to build the model
var ErrMalformedGrammar = errors.New("malformed grammar")

func missingField(where string, field string) error {
	return utils.MakeError(ErrMalformedGrammar, "%v: missing %q", where, field)
}
