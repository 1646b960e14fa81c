// Package clipboard abstracts the system clipboard so pages can be exercised
// without one.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/avitaltamir/vibetools/internal/logger"
)

// ErrUnavailable is returned when no clipboard backend can be used.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard reads and writes plain text.
type Clipboard interface {
	Copy(text string) error
	Paste() (string, error)
}

// System uses the OS clipboard through xclip/xsel/wl-clipboard, pbcopy or
// the Windows API.
type System struct{}

// NewSystem returns the OS clipboard.
func NewSystem() System {
	return System{}
}

// Copy writes text to the OS clipboard.
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		logger.Warn("Clipboard: write failed: %v", err)
		return fmt.Errorf("write clipboard: %w", err)
	}
	logger.Debug("Clipboard: wrote %d bytes", len(text))
	return nil
}

// Paste reads text from the OS clipboard.
func (System) Paste() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		logger.Warn("Clipboard: read failed: %v", err)
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	logger.Debug("Clipboard: read %d bytes", len(text))
	return text, nil
}

// Memory is an in-process clipboard, used in tests and when the system
// clipboard is disabled.
type Memory struct {
	mu   sync.Mutex
	text string
	// Err, when set, is returned by every Copy and Paste
	Err error
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// Copy stores text.
func (m *Memory) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

// Paste returns the stored text.
func (m *Memory) Paste() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.text, nil
}

// Text returns the stored text regardless of Err.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
