package host

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// countScene is done after a fixed number of updates.
type countScene struct {
	name   string
	frames int
	log    *[]string
	err    error
	loadFn func() error
}

func (s *countScene) Load() error {
	*s.log = append(*s.log, "load "+s.name)
	if s.loadFn != nil {
		return s.loadFn()
	}
	return nil
}

func (s *countScene) Unload() error {
	*s.log = append(*s.log, "unload "+s.name)
	return nil
}

func (s *countScene) Update(float64) error {
	*s.log = append(*s.log, "update "+s.name)
	s.frames--
	return s.err
}

func (s *countScene) Done() bool { return s.frames <= 0 }

func TestSceneManagerPlaysInOrder(t *testing.T) {
	var log []string
	m := NewSceneManager()
	_ = m.AddScene("intro", &countScene{name: "intro", frames: 2, log: &log})
	_ = m.AddScene("empty", &countScene{name: "empty", frames: 0, log: &log})
	_ = m.AddScene("outro", &countScene{name: "outro", frames: 1, log: &log})

	h := New(m)
	for i := 0; i < 4; i++ {
		if err := h.Step(1.0 / 60); err != nil {
			t.Fatal(err)
		}
	}
	if !m.Done() {
		t.Fatal("expected all scenes done")
	}
	if m.Current() != "" {
		t.Errorf("Current = %q, want empty", m.Current())
	}
	if err := h.Unregister(); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"load intro", "load empty", "load outro",
		"update intro", "update intro", "update outro",
		"unload outro", "unload empty", "unload intro",
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("scene sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSceneManagerLockedAfterRegister(t *testing.T) {
	var log []string
	m := NewSceneManager()
	if err := m.Register(); err != nil {
		t.Fatal(err)
	}
	if err := m.AddScene("late", &countScene{name: "late", log: &log}); !errors.Is(err, ErrLocked) {
		t.Errorf("AddScene after Register = %v, want ErrLocked", err)
	}
	_ = m.Unregister()
	if err := m.AddScene("again", &countScene{name: "again", log: &log}); err != nil {
		t.Errorf("AddScene after Unregister = %v, want nil", err)
	}
}

func TestSceneManagerUpdateError(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	m := NewSceneManager()
	_ = m.AddScene("bad", &countScene{name: "bad", frames: 3, log: &log, err: boom})

	h := New(m)
	if err := h.Step(0.1); !errors.Is(err, boom) {
		t.Errorf("Step = %v, want boom", err)
	}
}

func TestSceneManagerLoadFailureUnloads(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	m := NewSceneManager()
	_ = m.AddScene("a", &countScene{name: "a", frames: 1, log: &log})
	_ = m.AddScene("b", &countScene{name: "b", frames: 1, log: &log, loadFn: func() error { return boom }})

	if err := m.Register(); !errors.Is(err, boom) {
		t.Fatalf("Register = %v, want boom", err)
	}
	want := []string{"load a", "load b", "unload a"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
