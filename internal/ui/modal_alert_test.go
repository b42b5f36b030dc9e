package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertModal_DismissKeys(t *testing.T) {
	for _, k := range []string{"enter", "esc", " "} {
		m := NewDownloadFailedModal(nil)
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd, "key %q", k)
		assert.Equal(t, DismissModalMsg{}, cmd())
	}

	_, cmd := NewAlertModal("t", "x").Update(keyMsg("x"))
	assert.Nil(t, cmd)
}

func TestAlertModal_View(t *testing.T) {
	m := NewDownloadFailedModal(errors.New("download: fetch: timeout"))
	out := m.View()
	assert.Contains(t, out, "Download failed")
	assert.Contains(t, out, DownloadFailedText)
	assert.Contains(t, out, "download: fetch: timeout")

	assert.Empty(t, NewDownloadFailedModal(nil).Details)
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(Overlay{View: NewAlertModal("a", "first")})
	s.Push(Overlay{View: NewAlertModal("b", "second"), Dismiss: "esc"})
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.True(t, top.IsDismissKey("esc"))

	cmd, ok := s.UpdateTop(keyMsg("enter"))
	assert.True(t, ok)
	require.NotNil(t, cmd)

	s.Pop()
	top, _ = s.Peek()
	assert.Equal(t, "first", top.View.(*AlertModal).Text)
}
