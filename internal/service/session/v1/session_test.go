package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avdeyev/av_go_tiny_link/internal/config"
)

// Tests

func newTestManager(key string) *Manager {
	return NewManager(&config.SecretConfig{UserKey: key, TokenTTL: time.Hour})
}

func TestIssueParseRoundTrip(t *testing.T) {
	manager := newTestManager("jds__63h3_7ds")
	token, err := manager.Issue("someUserID")
	assert.NoError(t, err)
	userID, err := manager.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "someUserID", userID)
}

func TestParseGarbageToken(t *testing.T) {
	manager := newTestManager("jds__63h3_7ds")
	_, err := manager.Parse("not-a-token")
	assert.Error(t, err)
}

func TestParseForeignKey(t *testing.T) {
	manager := newTestManager("jds__63h3_7ds")
	foreign := newTestManager("some-other-key")
	token, err := foreign.Issue("someUserID")
	assert.NoError(t, err)
	_, err = manager.Parse(token)
	assert.Error(t, err)
}

func TestParseEmptyUserID(t *testing.T) {
	manager := newTestManager("jds__63h3_7ds")
	token, err := manager.Issue("")
	assert.NoError(t, err)
	_, err = manager.Parse(token)
	assert.Error(t, err)
}
