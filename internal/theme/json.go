package theme

import (
	"encoding/json"

	go_json "github.com/goccy/go-json"
	"github.com/samber/lo"
)

var _ json.Marshaler = Theme{}

type document struct {
	Name   string          `json:"name"`
	Tokens []tokenDocument `json:"tokens"`
}

type tokenDocument struct {
	Group    Group  `json:"group"`
	Name     string `json:"name"`
	Variable string `json:"variable"`
	Light    string `json:"light"`
	Dark     string `json:"dark"`
	Single   bool   `json:"single"`
}

func (t Theme) document() document {
	return document{
		Name: t.Name,
		Tokens: lo.Map(t.Tokens(), func(tok Token, _ int) tokenDocument {
			return tokenDocument{
				Group:    tok.Group,
				Name:     tok.Name,
				Variable: tok.Variable(),
				Light:    tok.Pair.Light().String(),
				Dark:     tok.Pair.Dark().String(),
				Single:   tok.Pair.IsSingleColor(),
			}
		}),
	}
}

// MarshalJSON encodes t as its flattened token list.
func (t Theme) MarshalJSON() ([]byte, error) {
	return go_json.Marshal(t.document())
}

// MarshalIndent is MarshalJSON formatted for files.
func MarshalIndent(t Theme) ([]byte, error) {
	return go_json.MarshalIndent(t.document(), "", "  ")
}
