package clauses

// Acta administrativa de hechos con dos testigos de cargo. Todos los
// campos degradan a líneas para levantar el acta a mano; las notas
// entre paréntesis son instrucciones de llenado y forman parte del
// machote.
var actaVariant = &variant{
	FileLabel:  "Acta_Administrativa",
	PartyField: "employeeName",
	Header: func(ctx *buildContext) []Block {
		formattedDate := letterDate(ctx, "actaDate")
		employeeName := ctx.fieldOr("employeeName", 28)
		position := ctx.fieldOr("position", 26)
		incidentTime := ctx.fieldOr("actaTime", 7)
		incidentDescription := ctx.fieldOr("actaIncidentDescription", 154)
		witness1Name := ctx.fieldOr("actaWitness1Name", 45)
		witness1Address := ctx.fieldOr("actaWitness1Address", 48)
		witness1Id := ctx.fieldOr("actaWitness1Id", 8)
		witness1Statement := ctx.fieldOr("actaWitness1Statement", 154)
		witness2Name := ctx.fieldOr("actaWitness2Name", 42)
		witness2Address := ctx.fieldOr("actaWitness2Address", 47)
		witness2Id := ctx.fieldOr("actaWitness2Id", 18)
		witness2Statement := ctx.fieldOr("actaWitness2Statement", 150)

		spacer := func(after int) Block {
			return para(Paragraph{Runs: []Run{{Text: "", Size: 24}}, SpacingAfter: after})
		}

		return []Block{
			para(Paragraph{
				Runs:         []Run{{Text: "ACTA ADMINISTRATIVA DE HECHOS", Size: 28, Bold: true}},
				Alignment:    AlignCenter,
				SpacingAfter: 600,
			}),
			para(Paragraph{
				Runs: []Run{
					{Text: `En las instalaciones de la fuente de trabajo: OLIVIA GONZALEZ MERCADO Y/O "BIRRIERIA LA PURISIMA", ubicada en: BLVD. PASEO DE LAS QUINTAS NUMERO 85 COLONIA MONTEBELLO ESTA CIUDAD, siendo las `, Size: 24},
					{Text: incidentTime, Size: 24, Underline: true},
					{Text: " horas, del día ", Size: 24},
					{Text: formattedDate, Size: 24, Underline: true},
					{Text: `, se reunieron la C. OLIVIA GONZALEZ MERCADO en su carácter de "el patrón" quien actúa con los C.C. (2 TESTIGOS de OLIVIA GONZALEZ MERCADO Y/O "BIRRIERIA LA PURISIMA"`, Size: 24},
					{Text: "____________________________________________________________________________________________________________________________________________", Size: 24, Underline: true},
					{Text: " como testigos de cargo se procedió a instrumentar la presente acta en contra del C. ", Size: 24},
					{Text: employeeName, Size: 24, Underline: true},
					{Text: ", quien tiene el puesto de", Size: 24},
					{Text: position, Size: 24, Underline: true},
					{Text: ", adscrito a esta BIRRIERIA LA PURISIMA de esta ciudad de Hermosillo, sonora.", Size: 24},
				},
				Alignment:    AlignJustified,
				SpacingAfter: 400,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: "HECHOS", Size: 24, Bold: true}},
				Alignment:    AlignLeft,
				SpacingAfter: 300,
			}),
			para(Paragraph{
				Runs: []Run{
					{Text: "Asimismo se hace constar que el motivo de la presente es por virtud de que ", Size: 24},
					{Text: incidentDescription, Size: 24, Underline: true},
					{Text: " (explicación detallada de los hechos o actos cometidos por el trabajador al que se le levanta el acta). Acto seguido se presenta:", Size: 24},
				},
				Alignment:    AlignJustified,
				SpacingAfter: 300,
			}),
			para(Paragraph{
				Runs: []Run{
					{Text: "El primer testigo de cargo de nombre ", Size: 24},
					{Text: witness1Name, Size: 24, Underline: true},
					{Text: " (persona que va a declarar como testigo de que le constan los hechos que se le atribuyen a la trabajadora que se le instrumenta el acta) quien dice ser mayor de edad, con domicilio particular en ", Size: 24},
					{Text: witness1Address, Size: 24, Underline: true},
					{Text: ", quien se identifica con la credencial número ", Size: 24},
					{Text: witness1Id, Size: 24, Underline: true},
					{Text: ", expedida a su favor por el I.F.E. o i.n.e., y quien bajo protesta de decir verdad declara que sabe y le consta que el C. ", Size: 24},
					{Text: employeeName, Size: 24, Underline: true},
					{Text: " (nombre completo de la persona a la que se levanta el acta o sea el trabajador) con puesto de ", Size: 24},
					{Text: position, Size: 24, Underline: true},
					{Text: ", quien presta sus servicios en este lugar, ", Size: 24},
					{Text: witness1Statement, Size: 24, Underline: true},
					{Text: " (explicación detallada por el testigo de cargo de cuándo, dónde, y cómo sucedieron los hechos y/o actos que se le atribuyen al trabajador al que se le levanta el acta), siendo todo lo que desea declarar. Acto seguido comparece:", Size: 24},
				},
				Alignment:    AlignJustified,
				SpacingAfter: 300,
			}),
			para(Paragraph{
				Runs: []Run{
					{Text: "El segundo testigo de cargo de nombre ", Size: 24},
					{Text: witness2Name, Size: 24, Underline: true},
					{Text: " (persona que va a declarar como testigo de que le constan los hechos que se le atribuyen a la trabajadora al que se le levanta el acta), quien dice ser mayor de edad, con domicilio particular en", Size: 24},
					{Text: witness2Address, Size: 24, Underline: true},
					{Text: ", quien se identifica con credencial número ", Size: 24},
					{Text: witness2Id, Size: 24, Underline: true},
					{Text: ", expedida a su favor por el I.F.E. o i.n.e., y quien bajo protesta de decir verdad declara: que sabe y le consta que la C. ", Size: 24},
					{Text: employeeName, Size: 24, Underline: true},
					{Text: ", con puesto de", Size: 24},
					{Text: position, Size: 24, Underline: true},
					{Text: ", quien presta sus servicios en este lugar,", Size: 24},
					{Text: witness2Statement, Size: 24, Underline: true},
					{Text: " (explicación detallada por el testigo de cargo de cuándo, dónde y cómo sucedieron los hechos y/o actos que se le atribuyen al trabajador al que se le levanta el acta), siendo todo lo que desea declarar.", Size: 24},
				},
				Alignment:    AlignJustified,
				SpacingAfter: 400,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: "Todos debidamente apercibidos de las consecuencias legales que contrae para los que declaran con falsedad, mismos quienes han oído y presenciado lo declarado por los comparecientes, lo cual se asentó en esta acta, la que se da por concluida, y firmando al margen y calce para constancia legal, los que en ella intervinieron y así quisieron hacerlo.", Size: 24}},
				Alignment:    AlignJustified,
				SpacingAfter: 800,
			}),
			spacer(400),
			spacer(400),
			para(Paragraph{
				Runs:         []Run{{Text: `OLIVIA GONZALEZ MERCADO Y/O "BIRRIERIA LA PURISIMA",`, Size: 24}},
				Alignment:    AlignCenter,
				SpacingAfter: 800,
			}),
			spacer(400),
			spacer(400),
			spacer(400),
			para(Paragraph{
				Runs:         []Run{{Text: "_____________________", Size: 24}},
				Alignment:    AlignLeft,
				SpacingAfter: 200,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: "(" + witness1Name + ")", Size: 20}},
				Alignment:    AlignLeft,
				SpacingAfter: 400,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: "_____________________", Size: 24}},
				Alignment:    AlignLeft,
				SpacingAfter: 200,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: "(" + witness2Name + ")", Size: 20}},
				Alignment:    AlignLeft,
				SpacingAfter: 200,
			}),
		}
	},
}
