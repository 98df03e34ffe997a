package clauses

import (
	"fmt"
	"strings"

	"birrieria-admin/internal/domain/documents/dates"
	"birrieria-admin/internal/domain/documents/fields"
)

// Contrato individual de trabajo por unidad de tiempo: fecha de inicio
// y de terminación explícitas, con cláusulas opcionales de prestaciones
// adicionales y términos pactados que renumeran a las siguientes.
var timeUnitVariant = &variant{
	FileLabel:     "Contrato",
	PartyField:    "employeeName",
	NeedsParties:  true,
	RequiredDates: []string{"timeUnitStartDate", "timeUnitEndDate"},
	Header:        timeUnitHeader,
	Clauses: []clauseSpec{
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clausePrimera(ctx, 56))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, fmt.Sprintf(`EL LUGAR DE LA PRESTACION DE SERVICIOS SERÁ EN: %s DE ESTA CIUDAD.`, ctx.branch.Name))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseTercera(ctx, 40))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseLeyFederal)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			start, _ := dates.ExtractDisplayParts(ctx.field("timeUnitStartDate"))
			end, _ := dates.ExtractDisplayParts(ctx.field("timeUnitEndDate"))
			return numberedClause(ord, fmt.Sprintf(`POR SU PARTE "EL TRABAJADOR" MANIFIESTA QUE SUS SERVICIOS LOS PRESTARA A "EL PATRON" como fecha de INICIO EL DIA %s DE %s DE %s CON TERMINACION EL DIA %s DE %s DE %s, A PARTIR DE LA FECHA DE LA CELEBRACION DEL PRESENTE CONTRATO Y EN TALES CONDICIONES QUEDA SUJETO A SUS ORDENES Y SUBORDINACIÓN SIN PODER OCUPARSE DE OTRAS FUNCIONES ENCOMENDADAS POR PERSONAS DISTINTAS A "EL PATRON."`,
				start.Day, start.Month, start.Year, end.Day, end.Month, end.Year))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseSeguridadSocial)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, `EL "PATRON", SE COMPROMETE A dar extensión de otro contrato por UNIDAD DE TIEMPO, SIEMPRE Y CUANDO HAYA DEMOSTRADO APTITUD PARA EL PUESTO QUE SE LE CONTRATO, ESTO PARA EL CASO DE QUE A JUICIO DEL "EL PATRON", "EL TRABAJADOR" SATISFAGA LOS REQUISITOS Y CONOCIMIENTOS NECESARIOS PARA DESARROLLAR LAS ACTIVIDADES del puesto ESTIPULADo EN LA CLAUSULA tercera DEL PRESENTE CONTRATO.`)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseSueldo(ctx))
		}},
		{Numbered: true, Include: hasBenefits, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, benefitsClause(ctx))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseJornada(ctx))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseTiempoExtra)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseDiasLaborales(ctx))
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
			return numberedClause(ord, `LAS PARTES CONVIENEN QUE "EL PATRON" AL TERMINO DEL presente contrato POR UNIDAD DE TIEMPO EN LA CLAUSULA SEPTIMA DEL PRESENTE CONTRATO, PODRA DAR POR TERMINADA LA RELACION DE TRABAJO, SIN RESPONSABILIDAD PARA "EL PATRON", SI A JUICIO DE ESTE ULTIMO, "EL TRABAJADOR" NO LLEGUE SATISFACER LOS REQUISITOS del puesto ESTIPULADo EN LA CLAUSULA tercerA DEL PRESENTE CONTRATO.`)
		}},
		{Numbered: true, Include: hasAdditionalTerms, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, fmt.Sprintf(`ADICIONALMENTE LAS PARTES PACTAN LO SIGUIENTE: %s.`,
				strings.ToUpper(ctx.field("additionalTerms"))))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseSupletoriedad)
		}},
	},
	Footer: func(ctx *buildContext) []Block {
		start, _ := dates.ExtractDisplayParts(ctx.field("timeUnitStartDate"))
		blocks := []Block{closingParagraph(fmt.Sprintf(`LEIDO QUE FUE EL PRESENTE CONTRATO POR LAS PARTES Y ENTERADOS DE SU ALCANCE Y FUERZA LEGAL, LO FIRMAN EN LA CIUDAD DE HERMOSILLO, A Los %s DIAS DEL MES DE %s DEL AÑO %s ANTE LA PRESENCIA DE LOS TESTIGOS QUE DAN FE A SU LEGALIDAD, QUEDANDO UN EJEMPLAR EN PODER DE CADA UNA DE LAS PARTES.`,
			start.Day, start.Month, start.Year))}
		return append(blocks, signatureBlocks(`"EL TRABAJADOR"`, `"EL PATRON"`)...)
	},
}

func timeUnitHeader(ctx *buildContext) []Block {
	start, _ := dates.ExtractDisplayParts(ctx.field("timeUnitStartDate"))
	end, _ := dates.ExtractDisplayParts(ctx.field("timeUnitEndDate"))
	return []Block{
		centeredTitle("CONTRATO INDIVIDUAL DE TRABAJO POR UNIDAD DE TIEMPO", 0),
		para(Paragraph{
			Runs: []Run{{Text: fmt.Sprintf(`DANDO INICIO EL DIA %s DE %s DE %s CON TERMINACION EL DIA %s DE %s DE %s`,
				start.Day, start.Month, start.Year, end.Day, end.Month, end.Year), Bold: true}},
			Alignment:    AlignCenter,
			SpacingAfter: 400,
		}),
		text(fmt.Sprintf(`QUE CELEBRAN POR UNA PARTE %s PERSONA FISICA %s EN REPRESENTACION Y %s DE EL LUGAR CONOCIDO COMERCIALMENTE COMO "%s" A QUIEN SE LE DENOMINARA "PATRON", Y POR OTRA PARTE EL C. %s`,
			strings.ToUpper(ctx.owner.GenderArticle), ctx.owner.Name,
			strings.ToUpper(ctx.owner.OwnershipWord2), ctx.branch.Name,
			ctx.fieldOr("employeeName", 56)), 200),
		text(`QUIEN SE LE DESIGNARA COMO "EL TRABAJADOR", EL PRESENTE CONTRATO ESTARA SUJETO A LAS SIGUIENTES DECLARACIONES Y CLAUSULAS:`, 400),
		centeredTitle("D E C L A R A C I O N E S", 0),
		text(declaracionPatron(ctx), 200),
		text(`II.- DECLARA "EL PATRON", QUE ESTA CONSTITUIDA CONFORME A LAS LEYES EMANADAS DE LOS ESTADOS UNIDOS MEXICANOS.`, 200),
		text(fmt.Sprintf(`III.- DECLARA EL "PATRON", QUE REQUIERE CONTRATAR A UN EMPLEADO CON TODAS Y CADA UNA DE LAS APTITUDES Y CAPACIDAD PARA QUE PRESTE SUS SERVICIOS PERSONALES BAJO EL PUESTO DE: %s, Y QUIEN SE LE ENCOMENDARAN LAS SIGUIENTES ACTIVIDADES: %s.`,
			upperOr(ctx, "employeePosition", 40), upperOr(ctx, "employeeActivities", 60)), 200),
		text(`IV.- DECLARA EL "TRABAJADOR":`, 200),
		text(fmt.Sprintf(`A) QUE SE LLAMA COMO HA QUEDADO ESCRITO, DE NACIONALIDAD %s, DE ESTADO CIVIL: %s Y CON DOMICILIO EN ESTA CIUDAD EL UBICADO EN: %s.`,
			upperOr(ctx, "employeeNationality", 12), upperOr(ctx, "employeeCivilStatus", 9),
			upperOr(ctx, "employeeAddress", 61)), 200),
		text(declProtesta, 200),
		text(declInteres, 200),
		text(`V.- LAS PARTES INTERVINIENTES HAN DECIDIDO CELEBRAR EL PRESENTE CONTRATO INDIVIDUAL DE TRABAJO POR UNIDAD DE TIEMPO, EL CUAL SE SUJETARÁ A LAS SIGUIENTES CLAUSULAS:`, 400),
		centeredTitle("C L A U S U L A S:", 0),
	}
}

func hasBenefits(rec fields.Record) bool {
	return len(fields.ResolveList(rec, "benefits")) > 0
}

func hasAdditionalTerms(rec fields.Record) bool {
	return fields.Get(rec, "additionalTerms") != ""
}

// benefitsClause enumera las prestaciones extra pactadas además de las
// de ley.
func benefitsClause(ctx *buildContext) string {
	list := strings.Join(fields.ResolveList(ctx.rec, "benefits"), ", ")
	return fmt.Sprintf(`ADEMAS DE LAS PRESTACIONES DE LEY, "EL PATRON" OTORGARA A "EL TRABAJADOR" LAS SIGUIENTES PRESTACIONES ADICIONALES: %s, LAS CUALES SE ENTREGARAN CONFORME A LAS POLITICAS INTERNAS DE "EL PATRON" Y NO PODRAN SER SUSTITUIDAS POR SU EQUIVALENTE EN EFECTIVO.`, list)
}
