package ner

import (
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
)

func TestRegistryUnsupportedLanguage(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Register("en", func() (*Pipeline, error) { return NewPipeline("en"), nil })

	_, err := reg.Pipeline("klingon")
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if reg.Supports("fr") {
		t.Fatal("expected fr to be unsupported")
	}
	if !reg.Supports("english") {
		t.Fatal("expected english alias to resolve to en")
	}
}

func TestRegistryLoadsOnce(t *testing.T) {
	var calls atomic.Int32
	reg := NewRegistry(nil)
	reg.Register("es", func() (*Pipeline, error) {
		calls.Add(1)
		return NewPipeline("es"), nil
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.Pipeline("es-MX"); err != nil {
				t.Errorf("Pipeline: %v", err)
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("loader called %d times, want 1", calls.Load())
	}
}

func TestRegistryCachesLoadFailure(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("weights missing")
	reg := NewRegistry(nil)
	reg.Register("en", func() (*Pipeline, error) {
		calls.Add(1)
		return nil, boom
	})

	for range 2 {
		_, err := reg.Pipeline("en")
		if !errors.Is(err, ErrModelLoad) || !errors.Is(err, boom) {
			t.Fatalf("expected ErrModelLoad wrapping boom, got %v", err)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("loader called %d times, want 1", calls.Load())
	}
}

func TestRegistryLanguagesSorted(t *testing.T) {
	reg := NewDefaultRegistry(Options{})
	got := reg.Languages()
	if len(got) != 2 || got[0] != "en" || got[1] != "es" {
		t.Fatalf("Languages() = %v, want [en es]", got)
	}
}

func TestDefaultRegistryMissingModelDir(t *testing.T) {
	reg := NewDefaultRegistry(Options{
		ModelDirs: map[string]string{"es": filepath.Join(t.TempDir(), "missing")},
	})
	if _, err := reg.Pipeline("es"); !errors.Is(err, ErrModelLoad) {
		t.Fatalf("expected ErrModelLoad for missing model dir, got %v", err)
	}
}

func TestDefaultRegistrySpanishRulesOnly(t *testing.T) {
	reg := NewDefaultRegistry(Options{})
	p, err := reg.Pipeline("spa")
	if err != nil {
		t.Fatalf("Pipeline: %v", err)
	}
	ents, err := p.Recognize("Telefónica S.A. anunció nuevos resultados")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if len(ents) != 1 || ents[0].Label != LabelOrganization || ents[0].Text != "Telefónica S.A." {
		t.Fatalf("Recognize = %v, want [ORG Telefónica S.A.]", ents)
	}
}
