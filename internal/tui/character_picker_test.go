package tui

import (
	"testing"

	"github.com/MKhiriev/go-ai-feedback/models"
	"github.com/stretchr/testify/assert"
)

func TestCharacterPicker(t *testing.T) {
	p := newCharacterPicker(models.SpeakerTsumugi)
	assert.Equal(t, models.SpeakerTsumugi, p.selected().ID)

	p.next()
	assert.Equal(t, models.SpeakerMeimeiHimari, p.selected().ID)
	p.next()
	assert.Equal(t, models.SpeakerZundamon, p.selected().ID)
	p.prev()
	assert.Equal(t, models.SpeakerMeimeiHimari, p.selected().ID)

	p.setCharacters(nil, models.SpeakerZundamon)
	assert.Len(t, p.characters, 3)

	p.setCharacters(models.Characters(), 999)
	assert.Equal(t, models.SpeakerZundamon, p.selected().ID)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "abcd…", fitText("abcdefgh", 5))
	// full-width characters take two cells each
	assert.Equal(t, "今日…", fitText("今日は走った", 5))
	assert.Equal(t, "abc", fitText("abc", 0))
}
