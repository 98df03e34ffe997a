package clauses

import (
	"fmt"
	"strings"

	"birrieria-admin/internal/domain/documents/dates"
)

// Convenio de confidencialidad: un solo cuerpo sin cláusulas numeradas.
// La fecha de firma degrada a línea en blanco si no viene.
var confidentialityVariant = &variant{
	FileLabel:    "Convenio_Confidencialidad",
	PartyField:   "employeeName",
	NeedsParties: true,
	Header: func(ctx *buildContext) []Block {
		ownerBranch := fmt.Sprintf(`%s Y/O "%s"`, ctx.owner.Name, ctx.branch.Name)
		employee := "eL TRABAJADOR"
		if v := ctx.field("employeeName"); v != "" {
			employee = strings.ToUpper(v)
		}
		return []Block{
			centeredTitle("CONVENIO DE CONFIDENCIALIDAD", 0),
			text(fmt.Sprintf(`Para los efectos de este convenio, se consideran como "SECRETOS DE %s, los conocimientos, recetas, tiempos y procedimientos de preparación de platillos y alimentos, ideas, información técnica, cursos, proyectos, procedimientos, procesos operativos, comerciales y administrativos, estrategias, métodos de LOGISTICA, registros, compilaciones Y información de %s., Por lo cual "el TRABAJADOR" no podrá revelar, apoderarse o usar en cualquier forma, directa o indirectamente, la información confidencial que obtuvo y obtendrá de: %s, en virtud de la relación laboral que sostiene con la fuente de trabajo, que es operada por "el patron" hasta en tanto dicha información confidencial no sea considerada de carácter público o del conocimiento de terceros. Información confidencial que desde ahora reconoce que es propiedad única y exclusiva de: %s, incluyendo sin limitar información técnica de mercado o de cualquier otra naturaleza, relativa a las operaciones, estrategias, políticas, manejo de actividades de ESTa birrieria y cualquier otra información a la que haya tenido acceso y que constituyen los "secretos de %s. en caso de que "%s" incumpliera con las obligaciones contenidas en el presente convenio CON %s, Y CON cualquiera de sus clientes respectivamente, tendrá en términos de ley, la facultad de ejercitar las acciones penales y civiles que se deriven de la posible conducta ilícita, de conformidad con lo dispuesto en de los códigos penales o civiles, estatales y federales.`,
				ownerBranch, ownerBranch, ownerBranch, ownerBranch, ownerBranch, employee, ownerBranch), 400),
		}
	},
	Footer: func(ctx *buildContext) []Block {
		closing := `Leido el presente convenio y enteradas las partes de su contenido y fuerza legal, lo firman por duplicado en la ciudad de Hermosillo, sonora, el día __________________________________________`
		if parts, ok := dates.ExtractDisplayParts(ctx.field("confidentialityDate")); ok {
			closing = fmt.Sprintf(`Leido el presente convenio y enteradas las partes de su contenido y fuerza legal, lo firman por duplicado en la ciudad de Hermosillo, sonora, el día %s DE %s DEL %s`,
				parts.Day, parts.Month, parts.Year)
		}
		employee := "NOMBRE DEL TRABAJADOR"
		if v := ctx.field("employeeName"); v != "" {
			employee = strings.ToUpper(v)
		}
		return []Block{
			closingParagraph(closing),
			para(Paragraph{
				Runs: []Run{
					{Text: `"el patron"`, Bold: true},
					{Text: "                                                                 "},
					{Text: `"eL TRABAJADOR"`, Bold: true},
				},
				Alignment:     AlignCenter,
				SpacingBefore: 400,
			}),
			para(Paragraph{
				Runs: []Run{
					{Text: "__________________________", Bold: true},
					{Text: "                                 "},
					{Text: "______________________________", Bold: true},
				},
				Alignment:     AlignCenter,
				SpacingBefore: 600,
			}),
			para(Paragraph{
				Runs: []Run{
					{Text: ctx.owner.Name, Bold: true},
					{Text: "                                                        "},
					{Text: employee, Bold: true},
				},
				Alignment: AlignCenter,
			}),
		}
	},
}
