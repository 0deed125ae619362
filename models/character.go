package models

// Character is a static persona record. ID doubles as the VOICEVOX speaker id.
type Character struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	// Color is the primary theme color (hex) used by the terminal client.
	Color string `json:"color"`

	// Accent is a secondary, lighter theme color (hex).
	Accent string `json:"accent"`
}

// Speaker ids of the bundled characters.
const (
	SpeakerZundamon     = 3
	SpeakerTsumugi      = 8
	SpeakerMeimeiHimari = 14
)

var characters = []Character{
	{ID: SpeakerZundamon, Name: "ずんだもん", Color: "#4ade80", Accent: "#dcfce7"},
	{ID: SpeakerTsumugi, Name: "春日部つむぎ", Color: "#fdba74", Accent: "#ffedd5"},
	{ID: SpeakerMeimeiHimari, Name: "冥鳴ひまり", Color: "#d8b4fe", Accent: "#f3e8ff"},
}

// Characters returns a copy of the character catalog in display order.
func Characters() []Character {
	out := make([]Character, len(characters))
	copy(out, characters)
	return out
}

// FindCharacter looks up a character by id.
func FindCharacter(id int) (Character, bool) {
	for _, c := range characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}
