package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rdct/internal/catalog"
	"rdct/internal/distro"
	"rdct/internal/script"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() *Model {
	tree := catalog.Build(distro.CentOS)
	return NewModel(tree, distro.CentOS, 80, 24, true, false)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(msg)
	return cmd
}

func TestInstallKeyEntersReviewing(t *testing.T) {
	m := newTestModel()
	press(t, m, keyRune('i'))
	if m.mode != ModeReviewing {
		t.Fatalf("expected reviewing mode, got %v", m.mode)
	}
	if m.reboot {
		t.Fatalf("expected reboot flag false for plain install")
	}
}

func TestInstallRebootKeyCapturesFlag(t *testing.T) {
	m := newTestModel()
	press(t, m, keyRune('r'))
	if m.mode != ModeReviewing {
		t.Fatalf("expected reviewing mode, got %v", m.mode)
	}
	if !m.reboot {
		t.Fatalf("expected reboot flag true")
	}
}

func TestQuitFromAnyMode(t *testing.T) {
	for _, setup := range []func(*Model){
		func(m *Model) {},
		func(m *Model) { press(t, m, keyRune('i')) },
	} {
		m := newTestModel()
		setup(m)
		cmd := press(t, m, keyRune('q'))
		if cmd == nil {
			t.Fatalf("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg")
		}
		if m.Outcome() != OutcomeQuit {
			t.Fatalf("expected quit outcome, got %v", m.Outcome())
		}
	}
}

func TestBackFromReviewingReturnsToBrowsing(t *testing.T) {
	m := newTestModel()
	press(t, m, keyRune('i'))
	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeBrowsing {
		t.Fatalf("expected browsing mode, got %v", m.mode)
	}
}

func TestRunFromReviewingCapturesScript(t *testing.T) {
	m := newTestModel()
	selectItem(t, m, "EPEL")
	press(t, m, keyRune('r')) // install+reboot
	cmd := press(t, m, keyRune('r'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if m.Outcome() != OutcomeRun {
		t.Fatalf("expected run outcome, got %v", m.Outcome())
	}
	want := script.Synthesize(m.tree, m.dist, true)
	if m.FinalScript() != want {
		t.Fatalf("expected final script to match synthesis snapshot")
	}
	if !strings.Contains(m.FinalScript(), "sudo reboot") {
		t.Fatalf("expected reboot trailer in final script")
	}
}

func TestBrowsingPreviewOmitsRebootTrailer(t *testing.T) {
	m := newTestModel()
	press(t, m, keyRune('r')) // install+reboot review
	if !strings.Contains(m.synthesize(), "sudo reboot") {
		t.Fatalf("expected reboot trailer in the review script")
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyEsc}) // back to browsing
	if m.mode != ModeBrowsing {
		t.Fatalf("expected browsing mode, got %v", m.mode)
	}
	if strings.Contains(m.View(), "sudo reboot") {
		t.Fatalf("expected browsing preview without the reboot trailer")
	}
}

func TestBrowsingTitleBranding(t *testing.T) {
	m := newTestModel()
	if !strings.Contains(m.View(), "RHEL/CentOS 10 TUI Manager (Detected: CentOS)") {
		t.Fatalf("expected the browsing title branding in the view")
	}
}

func TestBrowsingNavigationDelegates(t *testing.T) {
	m := newTestModel()
	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.nav.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", m.nav.Cursor())
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.nav.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", m.nav.Cursor())
	}

	// Cursor 0 is the Graphical Environments group.
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.nav.Depth() != 2 {
		t.Fatalf("expected depth 2 after entering group, got %d", m.nav.Depth())
	}
	crumb := m.nav.Breadcrumb()
	if crumb[len(crumb)-1] != "Graphical Environments" {
		t.Fatalf("expected breadcrumb to end in entered group, got %v", crumb)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.nav.Depth() != 1 {
		t.Fatalf("expected back at root, got depth %d", m.nav.Depth())
	}
}

func TestSaveFlowWritesPreviewSnapshot(t *testing.T) {
	m := newTestModel()
	selectItem(t, m, "EPEL")
	press(t, m, keyRune('i'))
	snapshot := m.synthesize()

	press(t, m, keyRune('s'))
	if m.mode != ModeSaving || m.saveForm == nil {
		t.Fatalf("expected saving mode with active form")
	}

	path := filepath.Join(t.TempDir(), "out.sh")
	for _, r := range path {
		press(t, m, keyRune(r))
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != ModeReviewing {
		t.Fatalf("expected return to reviewing, got %v", m.mode)
	}
	if m.saveForm != nil {
		t.Fatalf("expected form cleared after save")
	}
	if !strings.HasPrefix(m.statusMsg, "Saved to ") {
		t.Fatalf("expected success status, got %q", m.statusMsg)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved script: %v", err)
	}
	if string(data) != snapshot {
		t.Fatalf("expected saved file to byte-match the preview snapshot")
	}
}

func TestSaveCancelClearsFormAndStatus(t *testing.T) {
	m := newTestModel()
	press(t, m, keyRune('i'))
	press(t, m, keyRune('s'))
	press(t, m, keyRune('x'))
	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeReviewing {
		t.Fatalf("expected reviewing after cancel, got %v", m.mode)
	}
	if m.saveForm != nil {
		t.Fatalf("expected form cleared after cancel")
	}
	if m.statusMsg != "" {
		t.Fatalf("expected status cleared, got %q", m.statusMsg)
	}
}

func TestSaveFailureSurfacesStatusAndContinues(t *testing.T) {
	m := newTestModel()
	press(t, m, keyRune('i'))
	press(t, m, keyRune('s'))
	path := filepath.Join(t.TempDir(), "missing-dir", "out.sh")
	for _, r := range path {
		press(t, m, keyRune(r))
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeReviewing {
		t.Fatalf("expected session to continue in reviewing, got %v", m.mode)
	}
	if !m.statusErr || !strings.HasPrefix(m.statusMsg, "Error: ") {
		t.Fatalf("expected error status, got %q", m.statusMsg)
	}
}

func TestReviewFilterToggleAndClear(t *testing.T) {
	m := newTestModel()
	press(t, m, keyRune('i'))
	press(t, m, keyRune('/'))
	if !m.filterOn {
		t.Fatalf("expected filter active")
	}
	press(t, m, keyRune('e'))
	press(t, m, keyRune('p'))
	if m.filter != "ep" {
		t.Fatalf("expected filter %q, got %q", "ep", m.filter)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.filter != "e" {
		t.Fatalf("expected backspace to trim filter, got %q", m.filter)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.filterOn || m.filter != "" {
		t.Fatalf("expected filter cleared and inactive")
	}
	if m.mode != ModeReviewing {
		t.Fatalf("expected to stay in reviewing, got %v", m.mode)
	}
}

// selectItem toggles the named item directly on the tree; navigation
// correctness has its own tests.
func selectItem(t *testing.T, m *Model, name string) {
	t.Helper()
	for i := 0; i < m.tree.Len(); i++ {
		id := catalog.NodeID(i)
		node := m.tree.Node(id)
		if node.Kind == catalog.KindItem && node.Name == name {
			if err := m.tree.Toggle(id); err != nil {
				t.Fatalf("toggle %s: %v", name, err)
			}
			return
		}
	}
	t.Fatalf("item %q not found", name)
}
