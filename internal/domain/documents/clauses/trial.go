package clauses

import (
	"fmt"
	"strings"

	"birrieria-admin/internal/domain/documents/dates"
)

// Contrato a prueba: periodo fijo de 180 días naturales contados desde
// la fecha de inicio. El periodo capturado en el formulario es
// informativo, el texto legal siempre cita el máximo de ley.
var trialVariant = &variant{
	FileLabel:     "Contrato_Prueba",
	PartyField:    "employeeName",
	NeedsParties:  true,
	RequiredDates: []string{"timeUnitStartDate"},
	Header:        trialHeader,
	Clauses: []clauseSpec{
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clausePrimera(ctx, 56))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, fmt.Sprintf(`EL LUGAR DE LA PRESTACION DE SERVICIOS SERÁ EL UBICADO EN: %s DE ESTA CIUDAD.`, ctx.branch.Address))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseTercera(ctx, 40))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseLeyFederal)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, `POR SU PARTE "EL TRABAJADOR" MANIFIESTA QUE SUS SERVICIOS LOS PRESTARA A "EL PATRON" POR UN PERIODO A PRUEBA NO MAXIMO DE 180 DIAS NATURALES A PARTIR DE LA FECHA DE LA CELEBRACION DEL PRESENTE CONTRATO Y EN TALES CONDICIONES QUEDA SUJETO A SUS ORDENES Y SUBORDINACIÓN SIN PODER OCUPARSE DE OTRAS FUNCIONES ENCOMENDADAS POR PERSONAS DISTINTAS A "EL PATRON."`)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseSeguridadSocial)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, `EL "PATRON" PASANDO LOS 180 DIAS NATURALES DE PRUEBA, SE COMPROMETE A PRORROGAR EL PRESENTE CONTRATO DE TRABAJO, POR EL PERIODO QUE CONSIDERE NECESARIO (SIN PASAR EL LIMITE MARCADO EN "LA LEY") SIEMPRE Y CUANDO HAYA DEMOSTRADO APTITUD PARA EL PUESTO QUE SE LE CONTRATO, ESTO PARA EL CASO DE QUE A JUICIO DEL "EL PATRON", "EL TRABAJADOR" SATISFAGA LOS REQUISITOS Y CONOCIMIENTOS NECESARIOS PARA DESARROLLAR el puesto Estipulado EN LA CLAUSULA tercera, DEL PRESENTE CONTRATO.`)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseSueldo(ctx))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseJornada(ctx))
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, `"EL TRABAJADOR" UNICAMENTE PODRÁ LABORAR TIEMPO EXTRAORDINARIO CUANDO "EL PATRON" SE LO INDIQUE AUNQUE NO MEDIE ORDEN POR ESCRITO DEBIDAMENTE AUTORIZADA POR LA PERSONA COMPETENTE PARA TAL EFECTO.`)
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
			return numberedClause(ord, `LAS PARTES CONVIENEN QUE "EL PATRON" CON FUNDAMENTO EN EL ARTICULO 39-a DE LA NUEVA LEY FEDERAL DEL TRABAJO, AL TERMINO DEL PERIODO DE PRUEBA ESTIPULADO EN LA CLAUSULA SEPTIMA DEL PRESENTE CONTRATO, PODRA DAR POR TERMINADA LA RELACION DE TRABAJO, SIN RESPONSABILIDAD PARA "EL PATRON", SI A JUICIO DE ESTE ULTIMO, "EL TRABAJADOR" NO LLEGUE SATISFACER LOS REQUISITOS Y CONOCIMIENTOS NECESARIOS PARA DESARROLLAR LAS ACTIVIDADES ESTIPULADAS EN LA CLAUSULA SEGUNDA DEL PRESENTE CONTRATO.`)
		}},
		{Numbered: true, Build: func(ctx *buildContext, ord string) []Block {
			return numberedClause(ord, clauseSupletoriedad)
		}},
	},
	Footer: func(ctx *buildContext) []Block {
		start, _ := dates.ExtractDisplayParts(ctx.field("timeUnitStartDate"))
		blocks := []Block{closingParagraph(fmt.Sprintf(`LEIDO QUE FUE EL PRESENTE CONTRATO POR LAS PARTES Y ENTERADOS DE SU ALCANCE Y FUERZA LEGAL, LO FIRMAN EN LA CIUDAD DE HERMOSILO, A Los %s DIAS DEL MES DE %s DEL AÑO %s ANTE LA PRESENCIA DE LOS TESTIGOS QUE DAN FE A SU LEGALIDAD, QUEDANDO UN EJEMPLAR EN PODER DE CADA UNA DE LAS PARTES.`,
			start.Day, start.Month, start.Year))}
		return append(blocks, signatureBlocks(`"EL TRABAJADOR"`, fmt.Sprintf("%q", ctx.owner.Name))...)
	},
}

func trialHeader(ctx *buildContext) []Block {
	return []Block{
		centeredTitle("CONTRATO INDIVIDUAL DE TRABAJO A PRUEBA POR TIEMPO DETERMINADO", 0),
		text(fmt.Sprintf(`QUE CELEBRAN POR UNA PARTE CELEBRA %s PERSONA FISICA %s EN REPRESENTACION Y %s DE EL LUGAR CONOCIDO COMERCIALMENTE COMO "%s" A QUIEN SE LE DENOMINARA "PATRON", Y POR OTRA LA PERSONA DE NOMBRE EL O LA C. %s A QUIEN SE LE DENOMINARA "TRABAJADOR", EL CUAL SE SUJETARÁ A LAS SIGUIENTES DECLARACIONES Y CLAUSULAS:`,
			strings.ToUpper(ctx.owner.GenderArticle), ctx.owner.Name,
			strings.ToUpper(ctx.owner.OwnershipWord2), ctx.branch.Name,
			ctx.fieldOr("employeeName", 56)), 400),
		centeredTitle("D E C L A R A C I O N E S:", 0),
		text(declaracionPatron(ctx), 200),
		text(fmt.Sprintf(`II.- DECLARA EL "PATRON", QUE REQUIERE CONTRATAR A UN EMPLEADO CON TODAS Y CADA UNA DE LAS APTITUDES Y CAPACIDAD PARA QUE PRESTE SUS SERVICIOS PERSONALES BAJO EL PUESTO DE %s Y QUIEN SE LE ENCOMENDARAN LAS SIGUIENTES ACTIVIDADES %s.`,
			upperOr(ctx, "employeePosition", 40), upperOr(ctx, "employeeActivities", 60)), 200),
		text(`III.- DECLARA EL "TRABAJADOR":`, 200),
		text(fmt.Sprintf(`A) QUE SE LLAMA COMO HA QUEDADO ESCRITO, DE NACIONALIDAD MEXICANA, DE ESTADO CIVIL %s Y CON DOMICILIO EN ESTA CIUDAD EL UBICADO EN: %s.`,
			upperOr(ctx, "employeeCivilStatus", 9), upperOr(ctx, "employeeAddress", 61)), 200),
		text(declProtesta, 200),
		text(declInteres, 200),
		text(`IV.- LAS PARTES INTERVINIENTES HAN DECIDIDO CELEBRAR EL PRESENTE CONTRATO INDIVIDUAL DE TRABAJO A PRUEBA, EL CUAL SE SUJETARÁ A LAS SIGUIENTES CLAUSULAS:`, 400),
		centeredTitle("C L A U S U L A S :", 0),
	}
}
