package domain

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

var (
	moduleNamePattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9_]*(\.[A-Z][a-zA-Z0-9_]*)*$`)
	symbolNamePattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9_]*$`)
)

// The target is referenced fully qualified so that a decoder called `main`
// or `sendToJs` does not collide with the host's own declarations.
var hostProgramTemplate = template.Must(template.New("host").Parse(`port module {{.Host}} exposing (main)

import Json.Decode exposing (Value)
import Json.Encode
import {{.Module}}


port {{.Outbound}} : Value -> Cmd msg


port {{.Inbound}} : (Value -> msg) -> Sub msg


main : Program () () Value
main =
    Platform.worker
        { init = \_ -> ( (), Cmd.none )
        , update =
            \json _ ->
                case Json.Decode.decodeValue {{.Module}}.{{.Symbol}} json of
                    Ok value ->
                        ( ()
                        , {{.Outbound}}
                            (Json.Encode.object
                                [ ( "tag", Json.Encode.string "{{.Success}}" )
                                , ( "value", Json.Encode.string (Debug.toString value) )
                                ]
                            )
                        )

                    Err err ->
                        ( ()
                        , {{.Outbound}}
                            (Json.Encode.object
                                [ ( "tag", Json.Encode.string "{{.Error}}" )
                                , ( "value", Json.Encode.string (Json.Decode.errorToString err) )
                                ]
                            )
                        )
        , subscriptions = \_ -> {{.Inbound}} identity
        }
`))

type hostProgramData struct {
	Host     string
	Module   string
	Symbol   string
	Inbound  string
	Outbound string
	Success  m.ResultTag
	Error    m.ResultTag
}

// Synthesizer emits the source of the host program that runs one decoder.
type Synthesizer interface {
	Synthesize(module, symbol string) (string, error)
}

type synthesizer struct{}

// NewSynthesizer returns the Elm host program synthesizer.
func NewSynthesizer() Synthesizer {
	return synthesizer{}
}

// Synthesize renders a port module named DecodeRunner that decodes the value
// received on its inbound port with module.symbol and answers with a tagged
// {tag, value} object on its outbound port. Names that are not valid Elm
// identifiers are rejected so nothing can be injected into the program.
func (synthesizer) Synthesize(module, symbol string) (string, error) {
	if !moduleNamePattern.MatchString(module) {
		return "", fmt.Errorf("%w: invalid module name %q", ErrTargetNotFound, module)
	}

	if !symbolNamePattern.MatchString(symbol) {
		return "", fmt.Errorf("%w: invalid decoder name %q", ErrTargetNotFound, symbol)
	}

	var b strings.Builder

	err := hostProgramTemplate.Execute(&b, hostProgramData{
		Host:     m.HostModuleName,
		Module:   module,
		Symbol:   symbol,
		Inbound:  m.InboundPort,
		Outbound: m.OutboundPort,
		Success:  m.TagSuccess,
		Error:    m.TagError,
	})
	if err != nil {
		return "", fmt.Errorf("render host program: %w", err)
	}

	return b.String(), nil
}
