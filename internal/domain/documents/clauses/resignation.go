package clauses

// Carta de renuncia voluntaria con carácter de irrevocable.
var voluntaryQuitVariant = &variant{
	FileLabel:  "Carta_Renuncia",
	PartyField: "employeeName",
	Header: func(ctx *buildContext) []Block {
		formattedDate := letterDate(ctx, "voluntaryQuittingDate")
		employeeName := ctx.fieldOr("employeeName", 24)
		position := ctx.fieldOr("position", 25)

		return []Block{
			para(Paragraph{
				Runs:         []Run{{Text: "Guadalajara, Jalisco a " + formattedDate, Size: 24}},
				Alignment:    AlignRight,
				SpacingAfter: 400,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: "P R E S E N T E.-", Size: 24, Bold: true}},
				Alignment:    AlignLeft,
				SpacingAfter: 400,
			}),
			para(Paragraph{
				Runs: []Run{
					{Text: "Por medio de la presente me dirijo a ustedes para hacerles saber que con esta fecha presento, por medio de esta carta mi renuncia con carácter de irrevocable al empleo que había venido desempeñando como ", Size: 24},
					{Text: position, Size: 24, Underline: true},
					{Text: `, con la c. OLIVIA GONZALEZ MERCADO Y/O "BIRRIERIA LA PURISIMA", lo anterior por así convenir a mis intereses y en forma enteramente voluntaria, dicha determinación la hago con apoyo en la Fracción I del artículo 53 de la Ley Federal del Trabajo, para todos los efectos legales a que haya lugar.`, Size: 24},
				},
				Alignment:    AlignJustified,
				SpacingAfter: 400,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: "Agradezco las atenciones de que fui objeto en mi relación obrero-patronal, quedando de ustedes como atento amigo y seguro servidor.", Size: 24}},
				Alignment:    AlignJustified,
				SpacingAfter: 600,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: "FIRMA", Size: 24, Bold: true}},
				Alignment:    AlignCenter,
				SpacingAfter: 600,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: "_____________________________", Size: 24}},
				Alignment:    AlignCenter,
				SpacingAfter: 200,
			}),
			para(Paragraph{
				Runs:         []Run{{Text: employeeName, Size: 24}},
				Alignment:    AlignCenter,
				SpacingAfter: 200,
			}),
		}
	},
}
