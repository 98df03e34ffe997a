package clauses

import (
	"fmt"
	"strings"

	"birrieria-admin/internal/domain/documents/dates"
	"birrieria-admin/internal/domain/documents/fields"
)

// Contrato por tiempo indeterminado. A diferencia del contrato a prueba
// y el de unidad de tiempo, aquí la fecha de inicio no es de vigencia:
// si falta, el cierre degrada a líneas para llenar a mano.
var indefiniteVariant = &variant{
	FileLabel:    "Contrato_Indefinido",
	PartyField:   "employeeName",
	NeedsParties: true,
	Header:       indefiniteHeader,
	Clauses: []clauseSpec{
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clausePrimera(ctx, 56))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, fmt.Sprintf(`EL LUGAR DE LA PRESTACION DE SERVICIOS SERÁ EL UBICADO EN: %s DE ESTA CIUDAD.`, strings.ToUpper(ctx.branch.Address)))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseTercera(ctx, 40))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseLeyFederal)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, `POR SU PARTE "EL TRABAJADOR" MANIFIESTA QUE SUS SERVICIOS LOS PRESTARA A "EL PATRON" POR TIEMPO INDETERMINADO DE MANERA INDEFINIDA A PARTIR DE LA FECHA DE LA CELEBRACION DEL PRESENTE CONTRATO Y EN TALES CONDICIONES QUEDA SUJETO A SUS ORDENES Y SUBORDINACIÓN SIN PODER OCUPARSE DE OTRAS FUNCIONES ENCOMENDADAS POR PERSONAS DISTINTAS A "EL PATRON."`)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseSeguridadSocial)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, `EL "TRABAJADOR" ESTA OBLIGADO Y SE COMPROMETE A CUMPLIR CABALMENTE CON LOS REQUISITOS Y CONOCIMIENTOS PARA DESARROLLAR el puesto Estipulado EN LA CLAUSULA tercera, DEL PRESENTE CONTRATO.`)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseSueldo(ctx))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseJornada(ctx))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseTiempoExtra)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			days := fields.ResolveList(ctx.rec, "workingDays")
			joined := fields.Blank(17)
			if len(days) > 0 {
				joined = strings.Join(days, ",")
			}
			return numberedClause(ord, fmt.Sprintf(`"EL TRABAJADOR" PRESTARA SUS SERVICIOS A "EL PATRON" DE %s DE CADA SEMANA Y EN RAZON DEL MISMO SE LE OTORGARA EL PAGO CORRESPONDIENTE. POR LO QUE "EL TRABAJADOR" GOZARÁ COMO DESCANSO EL DIA %s DE CADA SEMANA. TAMBIEN DISFRUTARÁ "EL TRABAJADOR" DE LOS DIAS DE DESCANSO OBLIGATORIOS QUE MARCA EL ARTICULO 74 DE "LA LEY" CON EL FIN DE QUE SE LE OTORGUE EL DESCANSO A "EL TRABAJADOR".`,
				joined, ctx.fieldOr("restDay", 17)))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseCapacitacion)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseFaltas)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseRetardos)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, `LAS PARTES CONVIENEN QUE "EL PATRON" PODRA DAR POR CONCLUIDA LA RELACION DE TRABAJO Y LA TERMINACION DEL PRESENTE CONTRATO SI "EL TRABAJADOR" INCUMPLE CON CUALQUIER CLAUSULA DEL PRESENTE CONTRATO O CUALQUIER OTRA CIRCUNSTANCIA O CONDUCTA QUE MARQUE Y ESTIPULE "LA LEY" COMO CAUSA Y DESPIDO JUSTIFICADO SIN RESPONSABILIDAD PARA "EL PATRON".`)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseSupletoriedad)
		}},
	},
	Footer: func(ctx *buildContext) []Block {
		day, month, year := "___", "________", "______"
		if parts, ok := dates.ExtractDisplayParts(ctx.field("indefiniteStartDate")); ok {
			day, month, year = parts.Day, parts.Month, parts.Year
		}
		blocks := []Block{closingParagraph(fmt.Sprintf(`LEIDO QUE FUE EL PRESENTE CONTRATO POR LAS PARTES Y ENTERADOS DE SU ALCANCE Y FUERZA LEGAL, LO FIRMAN EN LA CIUDAD DE HERMOSILLO A LOS %s DIAS DEL MES DE %s DEL AÑO %s ANTE LA PRESENCIA DE LOS TESTIGOS QUE DAN FE A SU LEGALIDAD, QUEDANDO UN EJEMPLAR EN PODER DE CADA UNA DE LAS PARTES.`,
			day, month, year))}
		return append(blocks, signatureBlocks(`"EL TRABAJADOR"`, fmt.Sprintf("%q", ctx.owner.Name))...)
	},
}

func indefiniteHeader(ctx *buildContext) []Block {
	return []Block{
		centeredTitle("CONTRATO INDIVIDUAL DE TRABAJO POR TIEMPO INDETERMINADO QUE", 0),
		text(fmt.Sprintf(`CELEBRAN POR UNA PARTE CELEBRA %s PERSONA FISICA %s EN REPRESENTACION Y %s DE EL LUGAR CONOCIDO COMERCIALMENTE COMO "%s" A QUIEN SE LE DENOMINARA "PATRON", Y POR OTRA LA PERSONA DE NOMBRE EL O LA`,
			strings.ToUpper(ctx.owner.GenderArticle), ctx.owner.Name,
			strings.ToUpper(ctx.owner.OwnershipWord2), ctx.branch.Name), 200),
		text(fmt.Sprintf(`C.%s`, upperOr(ctx, "employeeName", 70)), 200),
		text(`A QUIEN SE LE DENOMINARA "TRABAJADOR", EL CUAL SE SUJETARÁ A LAS SIGUIENTES DECLARACIONES Y CLAUSULAS:`, 400),
		centeredTitle("D E C L A R A C I O N E S", 0),
		text(declaracionPatron(ctx), 200),
		text(fmt.Sprintf(`II.- DECLARA EL "PATRON", QUE REQUIERE CONTRATAR A UN EMPLEADO CON TODAS Y CADA UNA DE LAS APTITUDES Y CAPACIDAD PARA QUE PRESTE SUS SERVICIOS PERSONALES BAJO EL PUESTO DE %s Y QUIEN SE LE ENCOMENDARAN LAS SIGUIENTES ACTIVIDADES %s.`,
			upperOr(ctx, "employeePosition", 40), upperOr(ctx, "employeeActivities", 60)), 200),
		text(`III.- DECLARA EL "TRABAJADOR":`, 200),
		text(fmt.Sprintf(`A) QUE SE LLAMA COMO HA QUEDADO ESCRITO, DE NACIONALIDAD %s, DE ESTADO CIVIL %s Y CON DOMICILIO EN ESTA CIUDAD EL UBICADO EN: %s.`,
			nationalityOr(ctx), upperOr(ctx, "employeeCivilStatus", 9), upperOr(ctx, "employeeAddress", 61)), 200),
		text(declProtesta, 200),
		text(declInteres, 200),
		text(`IV.- LAS PARTES INTERVINIENTES HAN DECIDIDO CELEBRAR EL PRESENTE CONTRATO INDIVIDUAL DE TRABAJO POR TIEMPO INDETERMINADO, EL CUAL SE SUJETARÁ A LAS SIGUIENTES CLAUSULAS:`, 400),
		centeredTitle("C L A U S U L A S:", 0),
	}
}

// nationalityOr degrada la nacionalidad a MEXICANA en vez de líneas: el
// campo casi nunca cambia y dejarlo en blanco se ve peor en el impreso.
func nationalityOr(ctx *buildContext) string {
	if v := ctx.field("employeeNationality"); v != "" {
		return strings.ToUpper(v)
	}
	return "MEXICANA"
}
