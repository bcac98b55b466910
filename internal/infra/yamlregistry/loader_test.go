package yamlregistry

import (
	"strings"
	"testing"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

func TestBuiltin(t *testing.T) {
	r, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin error: %v", err)
	}

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(all))
	}

	lcm, ok := r.Get("lcm-calculator")
	if !ok {
		t.Fatalf("expected lcm-calculator to be registered")
	}
	if lcm.Command != "lcm" || lcm.Category != "Math Calculators" {
		t.Fatalf("unexpected tool %+v", lcm)
	}

	cats := r.Categories()
	if len(cats) != 2 || cats[0] != "Time Calculators" || cats[1] != "Math Calculators" {
		t.Fatalf("unexpected categories %v", cats)
	}

	if got := r.ByCategory("math calculators"); len(got) != 1 || got[0].ID != "lcm-calculator" {
		t.Fatalf("unexpected ByCategory result %v", got)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	r := MustBuiltin()
	all := r.All()
	all[0].Name = "mutated"

	if r.All()[0].Name == "mutated" {
		t.Fatalf("expected All to return a copy")
	}
}

func TestParse_Validation(t *testing.T) {
	cases := []struct {
		doc   string
		field string
	}{
		{"tools:\n  - name: x\n", "tools[0].id"},
		{"tools:\n  - id: a\n", "tools[0].name"},
		{"tools:\n  - id: a\n    name: A\n  - id: a\n    name: B\n", "tools[1].id"},
	}
	for _, c := range cases {
		_, err := Parse("tools.yaml", []byte(c.doc))
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("expected invalid config for %q, got %v", c.doc, err)
		}
		if !strings.Contains(err.Error(), c.field) {
			t.Fatalf("expected %s in error, got %v", c.field, err)
		}
	}
}

func TestParse_DefaultsCategory(t *testing.T) {
	r, err := Parse("tools.yaml", []byte("tools:\n  - id: a\n    name: A\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got, _ := r.Get("a"); got.Category != "Other" {
		t.Fatalf("expected default category, got %q", got.Category)
	}
}
