package service

import "testing"

func TestMockEmotionProvider_Deterministic(t *testing.T) {
	p := MockEmotionProvider{}
	first := p.GetSignals("session-123")
	for i := 0; i < 10; i++ {
		again := p.GetSignals("session-123")
		if len(again) != len(first) {
			t.Fatal("signal set size changed")
		}
		for k, v := range first {
			if again[k] != v {
				t.Fatalf("signal %s changed: %v -> %v", k, v, again[k])
			}
		}
	}
}

func TestMockEmotionProvider_Ranges(t *testing.T) {
	p := MockEmotionProvider{}
	for _, id := range []string{"a", "b", "seed", "550e8400-e29b-41d4-a716-446655440000"} {
		sig := p.GetSignals(id)
		if sig["nervous"] < 0.2 || sig["nervous"] > 0.6 {
			t.Fatalf("%s: nervous out of range: %v", id, sig["nervous"])
		}
		if sig["confident"] < 0.0 || sig["confident"] > 1.0 {
			t.Fatalf("%s: confident out of range: %v", id, sig["confident"])
		}
		if sig["empathetic_need"] < 0.1 || sig["empathetic_need"] > 0.5 {
			t.Fatalf("%s: empathetic_need out of range: %v", id, sig["empathetic_need"])
		}
	}
}

func TestHumeEmotionProvider_NoKeyDelegatesToMock(t *testing.T) {
	hume := NewHumeEmotionProvider("")
	mock := MockEmotionProvider{}

	got := hume.GetSignals("session-42")
	want := mock.GetSignals("session-42")
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("expected mock delegation, %s: %v != %v", k, got[k], v)
		}
	}
}

func TestHumeEmotionProvider_WithKeyReturnsNeutralSet(t *testing.T) {
	hume := NewHumeEmotionProvider("key")
	got := hume.GetSignals("any")
	if got["nervous"] != 0.3 || got["confident"] != 0.5 || got["empathetic_need"] != 0.2 {
		t.Fatalf("unexpected neutral set: %v", got)
	}
}
