package esb

import "strings"

// Message paradigms.
const (
	ParadigmAction   = "Action"
	ParadigmEvent    = "Event"
	ParadigmRequest  = "Request"
	ParadigmSolicit  = "Solicit"
	ParadigmResponse = "Response"
)

// InputParadigms are the paradigms allowed for input messages.
var InputParadigms = []string{ParadigmAction, ParadigmEvent, ParadigmRequest, ParadigmSolicit}

// Paradigm returns the part of a message root name after its last
// underscore.
func Paradigm(root string) (string, bool) {
	i := strings.LastIndex(root, "_")
	if i < 0 || i == len(root)-1 {
		return "", false
	}
	return root[i+1:], true
}

// CheckParadigms warns about input and output root names that do not end in
// a valid paradigm. The output root is only checked when hasOutput is set.
func CheckParadigms(inputRoot, outputRoot string, hasOutput bool, warn func(string)) {
	if p, ok := Paradigm(inputRoot); !ok {
		warn("Could not extract paradigm from soapBody attribute of inputValidator (should end with _Action, _Event, _Request or _Solicit)")
	} else if !isInputParadigm(p) {
		warn("Paradigm for input message which was extracted from soapBody should be on of Action, Event, Request or Solicit instead of '" + p + "'")
	}

	if !hasOutput {
		return
	}
	if p, ok := Paradigm(outputRoot); !ok {
		warn("Could not extract paradigm from soapBody attribute of outputValidator (should end with _Response)")
	} else if p != ParadigmResponse {
		warn("Paradigm for output message which was extracted from soapBody should be Response instead of '" + p + "'")
	}
}

func isInputParadigm(p string) bool {
	for _, v := range InputParadigms {
		if p == v {
			return true
		}
	}
	return false
}
