package render

import "sync"

// Target is the container a render pass mounts into. Each call replaces
// the previous content.
type Target interface {
	SetContent(fragment string)
	SetTotal(label string)
}

// Notifier surfaces a one-off message to the user.
type Notifier interface {
	Notify(message string)
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// StatsView is the hidden statistics panel.
type StatsView interface {
	Notifier
	Show(fragment string)
	Hide()
}

// Panel is an in-memory Target, StatsView and Notifier. It records the last
// state written, so concurrent renders into one Panel end with whichever
// finished last.
type Panel struct {
	mu      sync.Mutex
	content string
	total   string
	stats   string
	visible bool
	notices []string
}

func NewPanel() *Panel {
	return &Panel{}
}

func (p *Panel) SetContent(fragment string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.content = fragment
}

func (p *Panel) SetTotal(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total = label
}

func (p *Panel) Notify(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notices = append(p.notices, message)
}

func (p *Panel) Show(fragment string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats = fragment
	p.visible = true
}

func (p *Panel) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = false
}

func (p *Panel) Content() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.content
}

func (p *Panel) Total() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// Stats returns the statistics fragment and whether it is still shown.
func (p *Panel) Stats() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats, p.visible
}

func (p *Panel) Notices() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.notices...)
}
