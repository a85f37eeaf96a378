package dictionary

import "strings"

const (
	// NoDefinition is used when no meaning carries a definition
	NoDefinition = "No definition available."
	// NoExample is used when no meaning carries a definition to take an example from
	NoExample = "No example available."
)

// ExtractAudioURL picks the pronunciation audio to store for a term.
//
// A US recording ("-us." or "-us-" in the URL) wins, then the first non-empty URL.
// Nil means no audio is available.
func ExtractAudioURL(phonetics []Phonetic) *string {
	for _, p := range phonetics {
		if strings.Contains(p.Audio, "-us.") || strings.Contains(p.Audio, "-us-") {
			audio := p.Audio
			return &audio
		}
	}
	for _, p := range phonetics {
		if p.Audio != "" {
			audio := p.Audio
			return &audio
		}
	}
	return nil
}

// ExtractDefinitionAndExample takes the first definition of the first meaning that has one.
// A missing example falls back to a sentence naming the part of speech.
func ExtractDefinitionAndExample(meanings []Meaning) (definition, example string) {
	for _, meaning := range meanings {
		if len(meaning.Definitions) == 0 {
			continue
		}
		first := meaning.Definitions[0]

		definition = first.Definition
		if definition == "" {
			definition = NoDefinition
		}
		example = first.Example
		if example == "" {
			example = "This is a " + meaning.PartOfSpeech + "."
		}
		return definition, example
	}
	return NoDefinition, NoExample
}
