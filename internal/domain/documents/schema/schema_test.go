package schema

import (
	"testing"

	"birrieria-admin/internal/domain/documents/fields"
)

func TestStepsKnownTypes(t *testing.T) {
	for _, dt := range Types() {
		steps, err := Steps(dt)
		if err != nil {
			t.Fatalf("Steps(%s): %v", dt, err)
		}
		if len(steps) == 0 {
			t.Fatalf("Steps(%s): tabla vacía", dt)
		}
		for _, step := range steps {
			if step.Title == "" || len(step.Fields) == 0 {
				t.Fatalf("Steps(%s): paso incompleto %+v", dt, step)
			}
		}
	}
}

func TestStepsUnknownType(t *testing.T) {
	if _, err := Steps(DocType("poliza")); err != ErrUnknownType {
		t.Fatalf("err = %v", err)
	}
}

func TestMissingRequired_HonorsConditional(t *testing.T) {
	// Pago en efectivo: bankName no aplica y no debe reportarse.
	rec := fields.Record{
		"ownerKey":            "olivia",
		"branchKey":           "main",
		"timeUnitStartDate":   "2025-03-05",
		"trialPeriodDays":     "28",
		"employeeName":        "Juan Pérez",
		"employeeNationality": "MEXICANA",
		"employeeCivilStatus": "SOLTERO",
		"employeeAddress":     "Calle 1 #100",
		"employeePosition":    "MESERO",
		"employeeActivities":  "ATENDER MESAS",
		"dailySalary":         "350",
		"workStartTime":       "08:00",
		"workEndTime":         "17:00",
		"workingDays":         "LUNES A VIERNES",
		"restDay":             "DOMINGO",
		"paymentMethod":       "EFECTIVO",
		"paymentDay":          "VIERNES",
	}

	missing, err := MissingRequired(TypeTrial, rec)
	if err != nil {
		t.Fatalf("MissingRequired: %v", err)
	}
	if len(missing) != 0 {
		t.Fatalf("faltantes inesperados: %v", missing)
	}
}

func TestMissingRequired_ReportsAbsentFields(t *testing.T) {
	rec := fields.Record{"employeeName": "Juan"}
	missing, err := MissingRequired(TypeFiniquito, rec)
	if err != nil {
		t.Fatalf("MissingRequired: %v", err)
	}

	want := map[string]bool{"position": true, "finiquitoAmount": true, "finiquitoDate": true}
	if len(missing) != len(want) {
		t.Fatalf("missing = %v", missing)
	}
	for _, m := range missing {
		if !want[m] {
			t.Fatalf("campo inesperado %q en %v", m, missing)
		}
	}
}

func TestMissingRequired_Multiselect(t *testing.T) {
	// benefits es opcional: su ausencia nunca se reporta.
	rec := fields.Record{}
	missing, err := MissingRequired(TypeTimeUnit, rec)
	if err != nil {
		t.Fatalf("MissingRequired: %v", err)
	}
	for _, m := range missing {
		if m == "benefits" || m == "additionalTerms" {
			t.Fatalf("campo opcional reportado: %v", missing)
		}
	}
}
