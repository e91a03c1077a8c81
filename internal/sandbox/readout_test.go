package sandbox

import "testing"

func TestReadoutRowsInRegistrationOrder(t *testing.T) {
	r := NewReadout()
	r.AddParameter("fps", "FPS")
	r.AddParameter("objects", "OBJECTS")
	r.AddLine("press q to quit")

	r.Update("objects", 12)
	r.Update("fps", 60)

	rows := r.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0] != "FPS: 60" {
		t.Errorf("unexpected first row %q", rows[0])
	}
	if rows[1] != "OBJECTS: 12" {
		t.Errorf("unexpected second row %q", rows[1])
	}
	if rows[2] != "press q to quit" {
		t.Errorf("unexpected static row %q", rows[2])
	}
}

func TestReadoutUpdateInPlace(t *testing.T) {
	r := NewReadout()
	r.AddParameter("fps", "FPS")

	r.Update("fps", 30)
	r.Update("fps", 61.5)

	v, ok := r.Value("fps")
	if !ok || v != 61.5 {
		t.Errorf("expected 61.5, got %f (ok=%v)", v, ok)
	}
	if len(r.Rows()) != 1 {
		t.Error("updates must overwrite, not append")
	}
}

func TestReadoutUnknownNameIgnored(t *testing.T) {
	r := NewReadout()
	r.AddParameter("fps", "FPS")

	r.Update("nope", 1)

	if _, ok := r.Value("nope"); ok {
		t.Error("unknown slot must not exist")
	}
}

func TestReadoutReregisterKeepsPosition(t *testing.T) {
	r := NewReadout()
	r.AddParameter("fps", "FPS")
	r.AddParameter("objects", "OBJECTS")
	r.AddParameter("fps", "FRAMES/S")

	rows := r.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0] != "FRAMES/S: 0" {
		t.Errorf("re-register must keep position and update label, got %q", rows[0])
	}
}
