package clauses

import (
	"fmt"
	"strings"

	"birrieria-admin/internal/domain/documents/dates"
	"birrieria-admin/internal/domain/documents/fields"
)

// Textos y armadores compartidos por los tres contratos laborales. Las
// variantes sólo difieren en título, cláusula de vigencia, cláusula de
// prórroga y cláusula de terminación.

const (
	declProtesta = `B) BAJO PROTESTA DE DECIR VERDAD MANIFIESTA EL "TRABAJADOR" QUE ES UNA PERSONA APTA PARA PODER DESARROLLAR TODAS Y CADA UNA DE LAS ACTIVIDADES del puesto Descrito EN LA DECLARACIÓN ii, Y QUE REUNE LA TOTALIDAD DE LOS REQUISITOS NECESARIOS PARA PODER DESARROLLAR EL TRABAJO PARA EL CUAL SE LE CONTRATA, Y QUE CONSECUENTEMENTE PUEDE LLEVAR A CABO TALES ACTIVIDADES CON EL ESMERO, CUIDADO Y EFICIENCIA REQUERIDA, YA QUE TIENE LA COMPETENCIA, CAPACIDAD Y APTITUDES Y EXPERIENCIA NECESARIAS PARA DESEMPEÑAR EL PUESTO DE QUE SE TRATA Y REALIZAR TODAS LAS LABORES CORRESPONDIENTE A TALES TRABAJOS COMO SERVICIOS DE PRIMERA CATEGORÍA EN SU GÉNERO, DE ACUERDO A LAS CARTAS DE RECOMENDACIÓN Y REFERENCIAS PERSONALES, VERÍDICAS Y AUTENTICAS, QUE HAN PRESENTADO AL "PATRON" Y QUE NO TIENE NINGUNA CLASE DE ANTECEDENTES PENALES DE NINGUNA ESPECIE, EN VIRTUD DE QUE SIEMPRE A LLEVADO UN MODO DE VIVIR HONESTO; DECLARANDO DE IGUAL FORMA ESTAR DISPUESTO A PRESTAR SUS SERVICIOS PERSONALES COMO "TRABAJADOR" DEL "PATRON".`

	declInteres = `C) QUE LE INTERESA PRESTAR SUS SERVICIOS DESARROLANDO LA ACTIVIDAD MENCIONADA EN DECLARACIÓN II DE ESTE INSTRUMENTO PARA EL "PATRON", EN SU DOMICILIO O BIEN DONDE SE REQUIERA QUE PRESTE EL SERVICIO PARA EL CUAL FUE CONTRATADO.`

	clauseLeyFederal = `EL PRESENTE CONTRATO DE TRABAJO SERÁ REGIDO POR LA NUEVA LEY FEDERAL DEL TRABAJO PUBLICADA EL 30 DE NOVIEMBRE DEL 2012 EN EL DIARIO OFICIAL DE LA FEDERACION.`

	clauseSeguridadSocial = `El "PATRON" SE COMPROMETE A OTORGAR AL "TRABAJADOR" TODAS Y CADA UNA DE LAS GARANTIAS DE SEGURIDAD SOCIAL Y LAS PRESTACIONES QUE MARCA LA "LEY" EN RELACION A LA CATEGORIA Y PUESTO QUE DESEMPEÑE EL "TRABAJADOR".`

	clauseTiempoExtra = `"EL TRABAJADOR" UNICAMENTE PODRÁ LABORAR TIEMPO EXTRAORDINARIO CUANDO "EL PATRON" SE LO INDIQUE AUNQUE NO MEDIE ORDEN POR ESCRITO DEBIDAMENTE AUTORIZADA POR LA PERSONA COMPETENTE PARA TAL EFECTO Y SERAN PAGADERAS CONFORME MARCA "LA LEY".`

	clauseCapacitacion = `AMBAS PARTES SE OBLIGAN A CUMPLIR CON LOS PLANES Y PROGRAMAS DE CAPACITACION Y ADIESTRAMIENTO QUE SE LE ESTABLEZCAN POR PARTE DE "EL PATRON" EN CUMPLIMIENTO A LOS PLANES Y PROGRAMAS QUE SE FORMULEN DE ACUERDO A LO QUE ESTABLECE "LA LEY" A SI MISMO A DAR CUMPLIMIENTO A LOS MISMOS.`

	clauseFaltas = `CUANDO "EL TRABAJADOR" SE VEA EN LA NECESIDAD DE FALTAR A SUS LABORES POR CUALQUIER CIRCUNSTANCIA MOTIVO A RAZON, ANTICIPADAMENTE DEBERA DE PONERLO EN CONOCIMIENTO DE "EL PATRON" SOLO EN CASO DE QUE LE SEA METERIALMENTE IMPOSIBLE HACERLO EN FORMA PERSONAL, DEBERÁ DAR AVISO POR CONDUCTO DE ALGÚN FAMILIAR, COMPAÑERO DE TRABAJO A CUALQUIER OTRA PERSONA MEDIANTE NOTA POR ESCRITO ELABORADA Y FIRMADA POR EL MISMO. DICHO AVISO NO SERÁ JUSTIFICATIVO DE LA FALTA DE TRABAJO, PUES EN TODOS LOS CASOS "EL TRABAJADOR" DEBERÁ DE JUSTIFICAR SU AUSENCIA PRECISAMENTE AL REGRESAR DE SU REINCIDENCIA.`

	clauseRetardos = `CUANDO EL "TRABAJADOR" NO SE PRESENTE PUNTUALMENTE A SU TRABAJO, SIENDO SU RETARDO DE QUINCE (15) MINUTOS O MAYOR, YA NO ESTA ADMITIDO POR ESE DIA CONSIDERÁNDOSELE COMO FALTA INJUSTIFICADA A SUS LABORES PARA TODOS LO EFECTOS LEGALES. EN CASO DE QUE SU RETRASO SEA INFERIOR A DICHOS QUINCE (15) MINUTOS, SE LES DESCONTARÁ LA PARTE PROPORCIONAL QUE CORRESPONDE A SU SALARIO Y SE HARÁ ACREEDOR A UNA SANCION DISCIPLINARIA DE SUSPENSIÓN EN SU TRABAJO DE UNO (1) A DOS (2) DIAS, SEGÚN EL NUMERO DE RETARDOS QUE TENGA CADA SEMANA Y SU REINCIDENCIA.`

	clauseSupletoriedad = `"LAS PARTES" CONVIENEN EN QUE, EN TODO LO ESTIPULADO EN EL PRESENTE CONTRATO SE ESTARÁ EN LO DISPUESTO EN "LA LEY".`
)

// numberedClause arma el párrafo de una cláusula con su ordinal en
// negrita seguido del cuerpo.
func numberedClause(ordinal, body string) []Block {
	return []Block{para(Paragraph{
		Runs: []Run{
			{Text: ordinal + ".- ", Bold: true},
			{Text: body},
		},
		Alignment:    AlignJustified,
		SpacingAfter: 200,
	})}
}

func declaracionPatron(ctx *buildContext) string {
	suffix := "A"
	if ctx.owner.Gender == "MASCULINO" {
		suffix = "O"
	}
	return fmt.Sprintf(`I.- DECLARA "EL PATRON" SER MEXICAN%s MAYOR DE EDAD, DE SEXO %s QUE SE CONSTITUYE Y QUE EJERCE SUS ACTIVIDADES Y FUNCIONES COMO PERSONA FISICA ANTE EL SAT, QUÉ TIENE SU DOMICILIO PARA TODOS LOS EFECTOS LEGALES A QUE HAYA LUGAR EL UBICADO EN: %s.`,
		suffix, ctx.owner.Gender, ctx.branch.Address)
}

func clausePrimera(ctx *buildContext, nameWidth int) string {
	return fmt.Sprintf(`LAS PARTES CONTRATANTES CONVIENEN EN QUE PARA OBVIAR EN EL CURSO DEL PRESENTE, A %s PERSONA FISICA %s EN REPRESENTACION Y %s DE EL LUGAR CONOCIDO COMERCIALMENTE COMO "%s" A QUIEN SE LE DENOMINARA "PATRON", Y AL C. %s SE LE denominara "EL TRABAJADOR", Y A LA LEY FEDERAL DE TRABAJO "LA LEY".`,
		strings.ToUpper(ctx.owner.GenderArticle), ctx.owner.Name,
		strings.ToUpper(ctx.owner.OwnershipWord), ctx.branch.Name,
		upperOr(ctx, "employeeName", nameWidth))
}

func clauseTercera(ctx *buildContext, positionWidth int) string {
	return fmt.Sprintf(`"EL TRABAJADOR" BAJO LA DIRECCIÓN Y ÓRDENES DEL "EL PATRON" Y SUS REPRESENTANTES PRESTARA SUS SERVICIOS PERSONALES, COMO TRABAJADOR EN EL CARGO Y PUESTO DE: %s, ENTENDIÉNDOSE QUE SE ESTAN MENCIONANDO SOLAMENTE LAS LABORES BASICAS Y FUNDAMENTALES QUE DEBERÁ DE REALIZAR "EL TRABAJADOR" POR LO CUAL LA DESCRIPCIÓN Y ENUMERACIÓN ES EJEMPLIFICATIVA Y NO LIMITATIVA POR LO QUE TAMBIEN TENDRÁ EL DEBER DE LLEVAR ACABO TODAS AQUELLAS OTRAS LABORES SEMEJANTES, CONEXAS Y EN CUALQUIER FORMA COMPLEMENTARIA A LAS DESCRITAS.`,
		upperOr(ctx, "employeePosition", positionWidth))
}

// clauseSueldo arma la cláusula de pago. Las dos modalidades son
// mutuamente excluyentes: efectivo nunca menciona banco y transferencia
// siempre lo nombra.
func clauseSueldo(ctx *buildContext) string {
	salary := ctx.fieldOr("dailySalary", 10)
	day := ctx.fieldOr("paymentDay", 15)
	if ctx.field("paymentMethod") == "EFECTIVO" {
		return fmt.Sprintf(`EL SUELDO INTEGRADO QUE PERCIBIRÁ "EL TRABAJADOR" SERÁ EL DE: $%s M.N. DIARIOS. ESTE SALARIO SERA DEPOSITADO LIQUIDADO A "EL TRABAJADOR" EN EFECTIVO LOS DIAS %s CONJUNTAMENTE CON CUALQUIERA OTRA PRESTACION COMPLEMENTARIA QUE PUDIERA CORRESPONDERLE, ESTANDO OBLIGADO "EL TRABAJADOR" A FIRMAR LA CORRESPONDIENTE NOMINA O RECIBO DE PAGO RESPECTIVO.`,
			salary, day)
	}
	return fmt.Sprintf(`EL SUELDO INTEGRADO QUE PERCIBIRÁ "EL TRABAJADOR" SERÁ EL DE: $%s M.N. DIARIOS. ESTE SALARIO SERA DEPOSITADO LIQUIDADO A "EL TRABAJADOR" EN UNA CUENTA BANCARIA DEL BANCO DENOMINADO %s, A NOMBRE DE "EL TRABAJADOR", LOS DIAS %s CONJUNTAMENTE CON CUALQUIERA OTRA PRESTACION COMPLEMENTARIA QUE PUDIERA CORRESPONDERLE, ESTANDO OBLIGADO "EL TRABAJADOR" A FIRMAR LA CORRESPONDIENTE NOMINA O RECIBO DE PAGO RESPECTIVO.`,
		salary, ctx.fieldOr("bankName", 20), day)
}

func clauseJornada(ctx *buildContext) string {
	return fmt.Sprintf(`LA DURACIÓN DIARIA DE LAS DISTINTAS JORNADAS DE TRABAJO EN QUE LE TOQUE LABORAR A "EL TRABAJADOR" SERÁN LAS MÁXIMAS FIJADAS POR "LA LEY" COMO JORNADA DIURNA, NOCTURNA Y MIXTA. EL HORARIO CORRESPONDIENTE PARA LA PRESTACION DE LOS SERVICIOS, ASÍ COMO LAS HORAS DE ENTRADA Y SALIDA SERÁN FIJADAS POR "EL PATRON" PODRÁN VARIARSE DISCRECIONALMENTE, ESTANDO SUJETAS A LAS NECESIDADES DERIVADAS DEL DESARROLLO DE SUS ACTIVIDADES Y LOS TRABAJOS CONTRATADOS SEGÚN LA EPOCA Y EL AÑO. CONSECUENTEMENTE "EL TRABAJADOR" PODRÁ CAMBIADO DISCRECIONALMENTE POR "EL PATRON" PARA QUE ELABORE EN CUALQUIERA DE LOS SIGUIENTES TURNOS, DIURNOS, NOCTURNO O MIXTO QUE TENGA ESTABLECIDO, SEGÚN LO PERMITAN Y REQUIERAN LAS NECESIDADES DE LAS LABORES EN EL ENTENDIMIENTO DE QUE ESTAS MODALIDADES TENDRÁN EXCLUSIVAMENTE EL CARÁCTER DE TEMPORALES, POR LO MISMO SERAN MODIFICABLES EN TODO EL TIEMPO. HASTA EN TANTO LA EMPRESA NO NOTIFIQUE PRECISAMENTE PO ESCRITO UN DISTINTO HORARIO DE LABORES "EL TRABAJADOR" SE SUJETARA AL SIGUIENTE DE LAS: %s A LAS: %s HORAS POR CUALQUIER CAMBIO DE TURNO O DE HORARIO DE LABORES "EL PATRON" LO DEBERA DE NOTIFICAR A "EL TRABAJADOR" CON UNA ANTICIPACIÓN MINIMA DE CUARENTA Y OCHO HORAS.`,
		ctx.fieldOr("workStartTime", 14), ctx.fieldOr("workEndTime", 12))
}

// clauseDiasLaborales interpola el rango de días de la semana. Los días
// llegan como lista del formulario; el contrato sólo cita el primero y
// el último.
func clauseDiasLaborales(ctx *buildContext) string {
	days := fields.ResolveList(ctx.rec, "workingDays")
	first, last := "LUNES", "VIERNES"
	if len(days) > 0 {
		first = days[0]
		last = days[len(days)-1]
	}
	return fmt.Sprintf(`"EL TRABAJADOR" PRESTARA SUS SERVICIOS A "EL PATRON" DE %s A %s DE CADA SEMANA Y EN RAZON DEL MISMO SE LE OTORGARA EL PAGO CORRESPONDIENTE. POR LO QUE "EL TRABAJADOR" GOZARÁ COMO DESCANSO EL DIA %s DE CADA SEMANA. TAMBIEN DISFRUTARÁ "EL TRABAJADOR" DE LOS DIAS DE DESCANSO OBLIGATORIOS QUE MARCA EL ARTICULO 74 DE "LA LEY" CON EL FIN DE QUE SE LE OTORGUE EL DESCANSO A "EL TRABAJADOR".`,
		first, last, ctx.fieldOr("restDay", 17))
}

// closingParagraph arma el párrafo final de firma. Cada contrato trae
// su propia redacción de la plaza y la fecha.
func closingParagraph(text string) Block {
	return para(Paragraph{
		Runs:          []Run{{Text: text}},
		Alignment:     AlignJustified,
		SpacingBefore: 400,
		SpacingAfter:  400,
	})
}

// signatureBlocks produce las dos filas de firmas: trabajador y patrón
// arriba, los dos testigos abajo. Las etiquetas varían por contrato.
func signatureBlocks(leftLabel, rightLabel string) []Block {
	line := func(spacer string) Block {
		return para(Paragraph{
			Runs: []Run{
				{Text: "__________________________"},
				{Text: spacer},
				{Text: "______________________________"},
			},
			Alignment:     AlignCenter,
			SpacingBefore: 600,
		})
	}
	labels := func(left, spacer, right string) Block {
		return para(Paragraph{
			Runs: []Run{
				{Text: left, Bold: true},
				{Text: spacer},
				{Text: right, Bold: true},
			},
			Alignment:    AlignCenter,
			SpacingAfter: 400,
		})
	}
	return []Block{
		line("                                 "),
		labels(leftLabel, "                                                                 ", rightLabel),
		line("                                "),
		labels("TESTIGO", "                                                                           ", "TESTIGO"),
	}
}

// letterDate fecha una carta con el campo del formulario o, en su
// defecto, con el día de emisión.
func letterDate(ctx *buildContext, name string) string {
	if v := ctx.field(name); v != "" {
		if formatted := dates.FormatLongDate(v); formatted != dates.Placeholder {
			return formatted
		}
	}
	return dates.FormatLongDate(dates.NormalizeToFixedOffset(dates.CurrentDateString(ctx.now)))
}

func upperOr(ctx *buildContext, name string, width int) string {
	v := ctx.field(name)
	if v == "" {
		return fields.Blank(width)
	}
	return strings.ToUpper(v)
}
