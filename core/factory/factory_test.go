package factory

import "testing"

type fakeSink struct{ Endpoint string }

type fakeSinkConf struct {
	Endpoint string `json:"endpoint"`
}

func TestRegistryCreate(t *testing.T) {
	reg := NewRegistry[*fakeSink]()
	if err := reg.Register("fake", func(conf map[string]any) (*fakeSink, error) {
		var c fakeSinkConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &fakeSink{Endpoint: c.Endpoint}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	s, err := reg.Create(ModuleConfig{Type: "fake", Conf: map[string]any{"endpoint": "localhost:9999"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.Endpoint != "localhost:9999" {
		t.Fatalf("expected decoded endpoint got %q", s.Endpoint)
	}
}

func TestRegistryErrors(t *testing.T) {
	reg := NewRegistry[int]()
	if err := reg.Register("x", func(map[string]any) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("x", func(map[string]any) (int, error) { return 2, nil }); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := reg.Register("y", nil); err == nil {
		t.Fatal("expected nil builder error")
	}
	if _, err := reg.Create(ModuleConfig{Type: "missing"}); err == nil {
		t.Fatal("expected unknown type error")
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	var c fakeSinkConf
	if err := Decode(map[string]any{"endpoint": []int{1, 2}}, &c); err == nil {
		t.Fatal("expected decode error for mismatched type")
	}
}
