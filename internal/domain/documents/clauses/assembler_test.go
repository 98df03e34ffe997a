package clauses

import (
	"errors"
	"strings"
	"testing"
	"time"

	"birrieria-admin/internal/domain/documents/fields"
	"birrieria-admin/internal/domain/documents/schema"
)

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func baseContractRecord() fields.Record {
	return fields.Record{
		"ownerKey":            "olivia",
		"branchKey":           "main",
		"employeeName":        "Juan Pérez López",
		"employeePosition":    "Cocinero",
		"employeeActivities":  "Preparación de birria",
		"employeeNationality": "Mexicana",
		"employeeCivilStatus": "SOLTERO(A)",
		"employeeAddress":     "Calle Reforma 123",
		"dailySalary":         "350.50",
		"workStartTime":       "08:00",
		"workEndTime":         "16:00",
		"workingDays":         []string{"LUNES", "MARTES", "MIERCOLES", "JUEVES", "VIERNES"},
		"restDay":             "DOMINGO",
		"paymentDay":          "15 Y 30",
		"paymentMethod":       "EFECTIVO",
		"timeUnitStartDate":   "2025-03-05T07:00:00Z",
		"timeUnitEndDate":     "2025-09-05T07:00:00Z",
	}
}

func documentText(doc *Document) string {
	var b strings.Builder
	for _, blk := range doc.Blocks {
		if blk.Paragraph != nil {
			for _, r := range blk.Paragraph.Runs {
				b.WriteString(r.Text)
			}
			b.WriteString("\n")
		}
		if blk.Table != nil {
			for _, row := range blk.Table.Rows {
				for _, c := range row.Cells {
					b.WriteString(c.Text)
					b.WriteString("\t")
				}
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func TestAssembleUnknownType(t *testing.T) {
	if _, err := Assemble(schema.DocType("volante"), fields.Record{}, testNow); !errors.Is(err, schema.ErrUnknownType) {
		t.Fatalf("esperaba ErrUnknownType, llegó %v", err)
	}
}

func TestAssembleMissingStartDateFails(t *testing.T) {
	rec := baseContractRecord()
	delete(rec, "timeUnitStartDate")

	_, err := Assemble(schema.TypeTrial, rec, testNow)
	var missing *MissingDataError
	if !errors.As(err, &missing) {
		t.Fatalf("esperaba MissingDataError, llegó %v", err)
	}
	if missing.Field != "timeUnitStartDate" {
		t.Fatalf("campo reportado %q", missing.Field)
	}
}

func TestAssembleMalformedDateFails(t *testing.T) {
	rec := baseContractRecord()
	rec["timeUnitEndDate"] = "no es fecha"

	_, err := Assemble(schema.TypeTimeUnit, rec, testNow)
	var missing *MissingDataError
	if !errors.As(err, &missing) {
		t.Fatalf("esperaba MissingDataError, llegó %v", err)
	}
}

func TestAssembleUnknownOwner(t *testing.T) {
	rec := baseContractRecord()
	rec["ownerKey"] = "nadie"

	if _, err := Assemble(schema.TypeTimeUnit, rec, testNow); err == nil {
		t.Fatal("esperaba error por propietario desconocido")
	}
}

func TestTimeUnitDatesInterpolated(t *testing.T) {
	doc, err := Assemble(schema.TypeTimeUnit, baseContractRecord(), testNow)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	text := documentText(doc)
	if !strings.Contains(text, "DANDO INICIO EL DIA 5 DE MARZO DE 2025 CON TERMINACION EL DIA 5 DE SEPTIEMBRE DE 2025") {
		t.Fatal("encabezado sin las fechas de vigencia")
	}
	if doc.FileLabel != "Contrato" {
		t.Fatalf("FileLabel %q", doc.FileLabel)
	}
}

func TestPaymentMethodsAreExclusive(t *testing.T) {
	rec := baseContractRecord()
	doc, err := Assemble(schema.TypeTimeUnit, rec, testNow)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	text := documentText(doc)
	if !strings.Contains(text, `A "EL TRABAJADOR" EN EFECTIVO LOS DIAS 15 Y 30`) {
		t.Fatal("pago en efectivo sin su redacción")
	}
	if strings.Contains(text, "CUENTA BANCARIA") {
		t.Fatal("pago en efectivo no debe mencionar banco")
	}

	rec["paymentMethod"] = "TRANSFERENCIA"
	rec["bankName"] = "BANORTE"
	doc, err = Assemble(schema.TypeTimeUnit, rec, testNow)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	text = documentText(doc)
	if !strings.Contains(text, "CUENTA BANCARIA DEL BANCO DENOMINADO BANORTE") {
		t.Fatal("transferencia debe nombrar el banco")
	}
	if strings.Contains(text, `EN EFECTIVO LOS DIAS`) {
		t.Fatal("transferencia no debe usar la redacción de efectivo")
	}
}

func TestOwnerGenderAgreement(t *testing.T) {
	rec := baseContractRecord()
	rec["ownerKey"] = "jesus"
	doc, err := Assemble(schema.TypeTrial, rec, testNow)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	text := documentText(doc)
	for _, want := range []string{"MEXICANO", "MASCULINO", "EL PERSONA FISICA", "PROPIETARIO", "DUEÑO"} {
		if !strings.Contains(text, want) {
			t.Fatalf("falta la forma masculina %q", want)
		}
	}
	if strings.Contains(text, "MEXICANA MAYOR DE EDAD") {
		t.Fatal("concordancia femenina con propietario masculino")
	}

	rec["ownerKey"] = "olivia"
	doc, err = Assemble(schema.TypeTrial, rec, testNow)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	text = documentText(doc)
	for _, want := range []string{"MEXICANA MAYOR DE EDAD", "FEMENINO", "LA PERSONA FISICA", "PROPIETARIA", "DUEÑA"} {
		if !strings.Contains(text, want) {
			t.Fatalf("falta la forma femenina %q", want)
		}
	}
}

func TestOptionalClausesRenumber(t *testing.T) {
	rec := baseContractRecord()
	doc, err := Assemble(schema.TypeTimeUnit, rec, testNow)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	base := numberedOrdinals(doc)
	if got := len(base); got != 16 {
		t.Fatalf("sin opcionales esperaba 16 cláusulas, llegaron %d", got)
	}
	if base[len(base)-1] != "DECIMA SEXTA" {
		t.Fatalf("última cláusula %q", base[len(base)-1])
	}

	rec["benefits"] = []string{"VALES DE DESPENSA", "COMEDOR"}
	rec["additionalTerms"] = "uniforme por cuenta del patron"
	doc, err = Assemble(schema.TypeTimeUnit, rec, testNow)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	full := numberedOrdinals(doc)
	if got := len(full); got != 18 {
		t.Fatalf("con opcionales esperaba 18 cláusulas, llegaron %d", got)
	}
	for i, ord := range full {
		if ord != ordinals[i] {
			t.Fatalf("cláusula %d fuera de secuencia: %q", i, ord)
		}
	}
	text := documentText(doc)
	if !strings.Contains(text, "VALES DE DESPENSA, COMEDOR") {
		t.Fatal("prestaciones adicionales ausentes del texto")
	}
	if !strings.Contains(text, "UNIFORME POR CUENTA DEL PATRON") {
		t.Fatal("términos adicionales ausentes del texto")
	}
}

// numberedOrdinals extrae los ordinales en el orden en que aparecen.
func numberedOrdinals(doc *Document) []string {
	var got []string
	for _, blk := range doc.Blocks {
		if blk.Paragraph == nil || len(blk.Paragraph.Runs) == 0 {
			continue
		}
		first := blk.Paragraph.Runs[0]
		if first.Bold && strings.HasSuffix(first.Text, ".- ") {
			got = append(got, strings.TrimSuffix(first.Text, ".- "))
		}
	}
	return got
}

func TestIndefiniteDegradesMissingFields(t *testing.T) {
	rec := fields.Record{
		"ownerKey":  "jesus",
		"branchKey": "lasquintas",
	}
	doc, err := Assemble(schema.TypeIndefinite, rec, testNow)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	text := documentText(doc)
	if !strings.Contains(text, "C."+strings.Repeat("_", 70)) {
		t.Fatal("nombre ausente debió degradar a línea de 70 guiones bajos")
	}
	if !strings.Contains(text, "A LOS ___ DIAS DEL MES DE ________ DEL AÑO ______") {
		t.Fatal("cierre sin fecha debió degradar a líneas")
	}
}

func TestConfidentialityClosingUsesDate(t *testing.T) {
	rec := fields.Record{
		"ownerKey":            "olivia",
		"branchKey":           "lasquintas",
		"employeeName":        "Ana Ruiz",
		"confidentialityDate": "2025-03-05T07:00:00Z",
	}
	doc, err := Assemble(schema.TypeConfidentiality, rec, testNow)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	text := documentText(doc)
	if !strings.Contains(text, "el día 5 DE MARZO DEL 2025") {
		t.Fatal("cierre sin la fecha del convenio")
	}
	if !strings.Contains(text, "BIRRIERIA LA PURISIMA LAS QUINTAS") {
		t.Fatal("convenio sin la sucursal")
	}
	if !strings.Contains(text, "ANA RUIZ") {
		t.Fatal("convenio sin el nombre en mayúsculas")
	}
}

func TestFiniquitoAmountInWords(t *testing.T) {
	rec := fields.Record{
		"employeeName":    "Luis Soto",
		"position":        "Mesero",
		"finiquitoAmount": "850",
		"finiquitoDate":   "2025-03-05T07:00:00Z",
	}
	doc, err := Assemble(schema.TypeFiniquito, rec, testNow)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	text := documentText(doc)
	if !strings.Contains(text, "OCHOCIENTOS CINCUENTA PESOS") {
		t.Fatal("monto en letras ausente")
	}
	if !strings.Contains(text, "Guadalajara, Jalisco a 5 de marzo de 2025") {
		t.Fatal("encabezado sin la fecha larga")
	}
}

func TestLetterDatesFallBackToIssueDate(t *testing.T) {
	doc, err := Assemble(schema.TypeVoluntaryQuit, fields.Record{"employeeName": "Luis Soto"}, testNow)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	text := documentText(doc)
	if !strings.Contains(text, "Guadalajara, Jalisco a 10 de marzo de 2025") {
		t.Fatal("carta sin fecha debió fechar con el día de emisión")
	}
	if !strings.Contains(text, strings.Repeat("_", 25)) {
		t.Fatal("puesto ausente debió degradar a línea")
	}

	// fecha malformada también cae al día de emisión
	doc, err = Assemble(schema.TypeVoluntaryQuit, fields.Record{
		"employeeName":          "Luis Soto",
		"voluntaryQuittingDate": "no-es-fecha",
	}, testNow)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	text = documentText(doc)
	if !strings.Contains(text, "Guadalajara, Jalisco a 10 de marzo de 2025") {
		t.Fatal("carta con fecha malformada debió fechar con el día de emisión")
	}
}
