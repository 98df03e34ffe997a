package fields

import "testing"

func TestResolveReturnsValue(t *testing.T) {
	rec := Record{"employeeName": "Juan Pérez"}
	if got := Resolve(rec, "employeeName", 20); got != "Juan Pérez" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveDefaultsToBlankRun(t *testing.T) {
	rec := Record{}
	got := Resolve(rec, "employeeAddress", 12)
	if got != "____________" {
		t.Fatalf("got %q", got)
	}
	if got := Resolve(rec, "x", 0); got != "_" {
		t.Fatalf("ancho cero: %q", got)
	}
}

func TestResolveUpper(t *testing.T) {
	rec := Record{"employeePosition": "mesero"}
	if got := ResolveUpper(rec, "employeePosition", 10); got != "MESERO" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveList(t *testing.T) {
	rec := Record{"benefits": []string{"vales", " comedor ", ""}}
	got := ResolveList(rec, "benefits")
	if len(got) != 2 || got[0] != "vales" || got[1] != "comedor" {
		t.Fatalf("got %v", got)
	}
	if got := ResolveList(Record{}, "benefits"); len(got) != 0 {
		t.Fatalf("lista ausente: %v", got)
	}
}

func TestShouldInclude(t *testing.T) {
	cond := &Condition{DependsOn: "paymentMethod", ShowWhen: "TRANSFERENCIA"}

	rec := Record{"paymentMethod": "TRANSFERENCIA"}
	if !ShouldInclude(rec, cond) {
		t.Fatal("debería incluir con dependencia satisfecha")
	}

	rec = Record{"paymentMethod": "EFECTIVO"}
	if ShouldInclude(rec, cond) {
		t.Fatal("no debería incluir con dependencia insatisfecha")
	}

	if !ShouldInclude(Record{}, nil) {
		t.Fatal("sin regla siempre se incluye")
	}
}
