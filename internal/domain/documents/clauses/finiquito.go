package clauses

// Carta finiquito: recibo de gratificación por terminación voluntaria.
// Sin cláusulas numeradas; nombre, puesto y monto degradan a líneas o a
// cero para imprimir y llenar a mano.
var finiquitoVariant = &variant{
	FileLabel:  "Carta_Finiquito",
	PartyField: "employeeName",
	Header: func(ctx *buildContext) []Block {
		formattedDate := letterDate(ctx, "finiquitoDate")
		employeeName := ctx.fieldOr("employeeName", 24)
		position := ctx.fieldOr("position", 25)
		amount := ctx.field("finiquitoAmount")
		if amount == "" {
			amount = "0"
		}
		amountInWords := AmountToWords(amount)

		return []Block{
			para(Paragraph{
				Runs:         []Run{{Text: "Guadalajara, Jalisco a " + formattedDate, Size: 24}},
				Alignment:    AlignRight,
				SpacingAfter: 400,
			}),
			para(Paragraph{
				Runs: []Run{
					{Text: "BUENO POR-. $", Size: 24, Bold: true},
					{Text: amount, Size: 24, Underline: true},
				},
				Alignment:    AlignLeft,
				SpacingAfter: 200,
			}),
			para(Paragraph{
				Runs: []Run{
					{Text: `R E C I B I de OLIVIA GONZALEZ MERCADO Y/O "BIRRIERIA LA PURISIMA", la cantidad de $`, Size: 24},
					{Text: amount, Size: 24, Underline: true},
					{Text: "m.n. (SON: ", Size: 24},
					{Text: amountInWords, Size: 24, Underline: true},
					{Text: "), por concepto de gratificación que se me otorga con motivo de la terminación de mi contrato de trabajo que con esta fecha de hoy doy por terminado voluntariamente, lo anterior con fundamento en él artículo 53 Fracción I de la Ley Federal del Trabajo.", Size: 24},
				},
				Alignment:    AlignJustified,
				SpacingAfter: 300,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: `-----Este recibo hace las veces y lo otorgo como finiquito total de la prestación de servicio que tenía celebrado con: OLIVIA GONZALEZ MERCADO Y/O "BIRRIERIA LA PURISIMA".`, Size: 24}},
				Alignment:    AlignJustified,
				SpacingAfter: 300,
			}),
			para(Paragraph{
				Runs: []Run{
					{Text: `-----En vista de lo anterior, reconozco expresamente que no tengo ninguna prestación que reclamarle A "el patrón": OLIVIA GONZALEZ MERCADO Y/O "BIRRIERIA LA PURISIMA", por ninguna causa, con motivo de mis labores desarrolladas a su servicio, ya sea por conceptos de salarios devengados, pago de comisiones, horas extras, días festivos, así mismo hago constar para todos los efectos legales conducentes en términos del árt. 134 Fr. XIII de la ley Federal del Trabajo que me obligo a guardar estricta reserva de la información, procedimientos, y todos aquellos hechos y actos que con motivo de mi trabajo desempeñado en: OLIVIA GONZALEZ MERCADO Y/O "BIRRIERIA LA PURISIMA", sean de mi conocimiento y por lo tanto me obligo a no utilizar en beneficio propio o en beneficio de terceras personas ya sea directa o indirectamente la información, actos y demás hechos que sean de mi conocimiento, así como los secretos que se deriven de asuntos administrativos reservados que cuya divulgación pueda causar perjuicios a esta BIRRIERIA, comprometiéndome además a no divulgar información confidencial obtenida con motivo de la prestación de mis servicios como `, Size: 24},
					{Text: position, Size: 24, Underline: true},
					{Text: `, aquella que no ha sido publicada o que no ha sido conocida por el resto de la competencia en este ramo RESTAURANTERO DE BIRRIERIA, ya que entiendo que esta se encuentra siendo propiedad del C. OLIVIA GONZALEZ MERCADO mismos secretos que están protegidos por la ley, hago constar para todos los efectos legales conducentes que durante la vigencia de mi relación obrero-patronal no fui objeto de riesgo profesional alguno, motivo por el cual libero a "el patrón" de toda responsabilidad laboral y de seguridad social, o cualquier otro concepto derivado del trabajo que con esta fecha hemos dado por definitivamente terminado.`, Size: 24},
				},
				Alignment:    AlignJustified,
				SpacingAfter: 600,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: "firma", Size: 24}},
				Alignment:    AlignLeft,
				SpacingAfter: 400,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: "_____________________________________________", Size: 24}},
				Alignment:    AlignLeft,
				SpacingAfter: 200,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: "Nombre del trabajador", Size: 24}},
				Alignment:    AlignLeft,
				SpacingAfter: 100,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: employeeName, Size: 24}},
				Alignment:    AlignLeft,
				SpacingAfter: 200,
			}),
		}
	},
}
