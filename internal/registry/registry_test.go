package registry

import "testing"

func TestRegisterAndGet(t *testing.T) {
	Register(Scenario{ID: "test-b", Title: "B", Source: []byte("name: B")})
	Register(Scenario{ID: "test-a", Title: "A"})

	s, err := Get("test-b")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if s.Title != "B" || string(s.Source) != "name: B" {
		t.Errorf("Get() = %+v, expected title B with source", s)
	}
	if !Exists("test-a") {
		t.Error("Exists(test-a) should be true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) should be false")
	}
	if _, err := Get("missing"); err == nil {
		t.Error("Get(missing) should fail")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Scenario{ID: "test-dup"})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(Scenario{ID: "test-dup"})
}
