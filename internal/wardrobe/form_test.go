package wardrobe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erazemk/garderoba/internal/docstore"
	"github.com/erazemk/garderoba/internal/model"
)

func fillClothes(t *testing.T, f *Form, name, color, occasion string) {
	t.Helper()
	for field, v := range map[string]string{
		model.FieldItemName: name,
		model.FieldColor:    color,
		model.FieldOccasion: occasion,
	} {
		if err := f.Set(field, v); err != nil {
			t.Fatalf("Set(%s): %v", field, err)
		}
	}
}

func TestFormSubmitSuccessResetsDraft(t *testing.T) {
	s := docstore.NewTestStore(t)
	f := NewForm(model.CategoryClothes, s)
	fillClothes(t, f, "shirt", "blue", "work")

	item, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if item.ID == "" {
		t.Error("expected a generated id")
	}

	if !f.Draft().Equal(model.NewDraft(model.CategoryClothes)) {
		t.Error("expected draft to be reset after success")
	}

	st := f.Status()
	if st.Phase != PhaseSucceeded {
		t.Errorf("expected phase succeeded, got %s", st.Phase)
	}
	if st.Notice.Kind != NoticeSuccess || st.Notice.Message != "Clothes added successfully" {
		t.Errorf("unexpected notice %+v", st.Notice)
	}
	if f.Pending() {
		t.Error("expected pending to be cleared")
	}

	all, _ := s.ReadAll(context.Background(), "clothes")
	rec := all[item.ID]
	if rec[model.FieldItemName] != "shirt" || rec[model.FieldColor] != "blue" || rec[model.FieldOccasion] != "work" {
		t.Errorf("stored record does not match draft: %v", rec)
	}
}

func TestFormSubmitFailureKeepsDraft(t *testing.T) {
	s := &docstore.Faulty{Store: docstore.NewTestStore(t)}
	s.FailAppend(true)
	f := NewForm(model.CategoryClothes, s)
	fillClothes(t, f, "jeans", "black", "casual")
	before := f.Draft()

	_, err := f.Submit(context.Background())
	if !docstore.IsStoreError(err) {
		t.Fatalf("expected StoreError, got %v", err)
	}

	if !f.Draft().Equal(before) {
		t.Error("expected draft to be unchanged after failure")
	}
	st := f.Status()
	if st.Phase != PhaseFailed {
		t.Errorf("expected phase failed, got %s", st.Phase)
	}
	if st.Notice.Kind != NoticeFailure || st.Notice.Message != "Error adding clothes" {
		t.Errorf("unexpected notice %+v", st.Notice)
	}
	if f.Pending() {
		t.Error("expected pending to be cleared after failure")
	}

	// Retry with the preserved draft.
	s.FailAppend(false)
	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if f.Status().Phase != PhaseSucceeded {
		t.Error("expected retry to succeed")
	}
}

func TestFormSubmitIncompleteDraft(t *testing.T) {
	s := docstore.NewTestStore(t)
	f := NewForm(model.CategoryFootwear, s)
	f.Set(model.FieldFootwearName, "Boots")

	_, err := f.Submit(context.Background())
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if f.Status().Phase != PhaseIdle {
		t.Errorf("expected form to stay idle, got %s", f.Status().Phase)
	}

	all, _ := s.ReadAll(context.Background(), "footwear")
	if len(all) != 0 {
		t.Errorf("expected nothing written, got %d records", len(all))
	}
}

func TestFormPendingWhileInFlight(t *testing.T) {
	block := make(chan struct{})
	s := &docstore.Faulty{Store: docstore.NewTestStore(t), Block: block}
	f := NewForm(model.CategoryAccessories, s)
	f.Set(model.FieldAccessoryName, "Hat")
	f.Set(model.FieldColor, "red")

	if f.Pending() {
		t.Fatal("expected form not pending before submit")
	}

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()

	waitFor(t, f.Pending)

	if _, err := f.Submit(context.Background()); !errors.Is(err, ErrPending) {
		t.Errorf("expected ErrPending for second submit, got %v", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if f.Pending() {
		t.Error("expected pending to be cleared after completion")
	}

	all, _ := s.ReadAll(context.Background(), "accessories")
	if len(all) != 1 {
		t.Errorf("expected exactly one write, got %d", len(all))
	}
}

func TestFormConsumeNotice(t *testing.T) {
	f := NewForm(model.CategoryAccessories, docstore.NewTestStore(t))
	f.Set(model.FieldAccessoryName, "Scarf")
	f.Set(model.FieldColor, "green")
	f.Submit(context.Background())

	if n := f.ConsumeNotice(); n.Kind != NoticeSuccess || n.Message != "Accessory added successfully" {
		t.Errorf("unexpected notice %+v", n)
	}
	if n := f.ConsumeNotice(); !n.IsZero() {
		t.Errorf("expected notice to be cleared, got %+v", n)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(time.Millisecond)
	}
}
