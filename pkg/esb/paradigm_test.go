package esb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParadigm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		root string
		want string
		ok   bool
	}{
		{root: "SubmitOrder_Request", want: "Request", ok: true},
		{root: "Get_Customer_Response", want: "Response", ok: true},
		{root: "SubmitOrder", ok: false},
		{root: "SubmitOrder_", ok: false},
		{root: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			t.Parallel()
			got, ok := Paradigm(tt.root)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckParadigms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		output    string
		hasOutput bool
		want      recorder
	}{
		{name: "valid request response", input: "Op_Request", output: "Op_Response", hasOutput: true},
		{name: "valid event without output", input: "Op_Event"},
		{
			name:  "invalid input paradigm",
			input: "Op_Reply",
			want:  recorder{"Paradigm for input message which was extracted from soapBody should be on of Action, Event, Request or Solicit instead of 'Reply'"},
		},
		{
			name:  "missing input paradigm",
			input: "Op",
			want:  recorder{"Could not extract paradigm from soapBody attribute of inputValidator (should end with _Action, _Event, _Request or _Solicit)"},
		},
		{
			name: "invalid output paradigm", input: "Op_Solicit", output: "Op_Request", hasOutput: true,
			want: recorder{"Paradigm for output message which was extracted from soapBody should be Response instead of 'Request'"},
		},
		{
			name: "missing output paradigm", input: "Op_Action", output: "Op", hasOutput: true,
			want: recorder{"Could not extract paradigm from soapBody attribute of outputValidator (should end with _Response)"},
		},
		{name: "output ignored without output validator", input: "Op_Action", output: "Op"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got recorder
			CheckParadigms(tt.input, tt.output, tt.hasOutput, got.warn)
			assert.Equal(t, tt.want, got)
		})
	}
}
