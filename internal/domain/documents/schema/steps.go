package schema

import "birrieria-admin/internal/domain/documents/fields"

// Las tablas se mantienen deliberadamente duplicadas por tipo (sin pasos
// compartidos): agregar un campo a un tipo no debe tocar los demás.

var byType = map[DocType][]FormStep{
	TypeTrial:           trialSteps,
	TypeTimeUnit:        timeUnitSteps,
	TypeIndefinite:      indefiniteSteps,
	TypeConfidentiality: confidentialitySteps,
	TypeVoluntaryQuit:   voluntaryQuitSteps,
	TypeFiniquito:       finiquitoSteps,
	TypeActa:            actaSteps,
}

var bankTransferOnly = &fields.Condition{DependsOn: "paymentMethod", ShowWhen: "TRANSFERENCIA"}

var trialSteps = []FormStep{
	{
		Title:       "Información del Contrato",
		Description: "Seleccione el propietario, sucursal e ingrese la fecha de inicio del contrato de prueba",
		Fields: []FormField{
			{Name: "ownerKey", Label: "Seleccionar Propietario", Type: FieldSelect, Required: true, Options: OwnerOptions},
			{Name: "branchKey", Label: "Seleccionar Sucursal", Type: FieldSelect, Required: true, Options: BranchOptions},
			{Name: "timeUnitStartDate", Label: "Fecha de Inicio", Type: FieldDate, Required: true},
			{Name: "trialPeriodDays", Label: "Días de Prueba", Type: FieldText, Required: true, Placeholder: "Ingrese el número de días de prueba"},
		},
	},
	{
		Title:       "Información del Empleado",
		Description: "Ingrese los datos personales del empleado",
		Fields: []FormField{
			{Name: "employeeName", Label: "Nombre Completo", Type: FieldText, Required: true, Placeholder: "Ingrese el nombre completo del empleado"},
			{Name: "employeeNationality", Label: "Nacionalidad", Type: FieldText, Required: true, Placeholder: "Ingrese la nacionalidad del empleado"},
			{Name: "employeeCivilStatus", Label: "Estado Civil", Type: FieldSelect, Required: true, Options: CivilStatus},
			{Name: "employeeAddress", Label: "Dirección", Type: FieldText, Required: true, Placeholder: "Ingrese la dirección del empleado"},
		},
	},
	{
		Title:       "Detalles del Puesto",
		Description: "Ingrese la información del puesto y actividades del empleado",
		Fields: []FormField{
			{Name: "employeePosition", Label: "Puesto", Type: FieldText, Required: true, Placeholder: "Ingrese el puesto del empleado"},
			{Name: "employeeActivities", Label: "Actividades", Type: FieldTextarea, Required: true, Placeholder: "Ingrese las actividades del empleado"},
			{Name: "dailySalary", Label: "Salario Diario", Type: FieldText, Required: true, Placeholder: "Ingrese el salario diario"},
		},
	},
	{
		Title:       "Horario y Días de Trabajo",
		Description: "Configure el horario y los días de trabajo del empleado",
		Fields: []FormField{
			{Name: "workStartTime", Label: "Hora de Entrada", Type: FieldTime, Required: true},
			{Name: "workEndTime", Label: "Hora de Salida", Type: FieldTime, Required: true},
			{Name: "workingDays", Label: "Días de Trabajo", Type: FieldText, Required: true},
			{Name: "restDay", Label: "Día de Descanso", Type: FieldSelect, Required: true, Options: RestDays},
		},
	},
	{
		Title:       "Información de Pago",
		Description: "Configure el método de pago del empleado",
		Fields: []FormField{
			{Name: "paymentMethod", Label: "Método de Pago", Type: FieldSelect, Required: true, Options: PaymentMethods, DefaultValue: "EFECTIVO"},
			{Name: "bankName", Label: "Banco", Type: FieldSelect, Required: false, Options: Banks, Conditional: bankTransferOnly},
			{Name: "paymentDay", Label: "Día de Pago", Type: FieldSelect, Required: true, Options: PaymentDays},
		},
	},
}

var timeUnitSteps = []FormStep{
	{
		Title:       "Información del Contrato",
		Description: "Seleccione el propietario, sucursal y el periodo del contrato",
		Fields: []FormField{
			{Name: "ownerKey", Label: "Seleccionar Propietario", Type: FieldSelect, Required: true, Options: OwnerOptions},
			{Name: "branchKey", Label: "Seleccionar Sucursal", Type: FieldSelect, Required: true, Options: BranchOptions},
			{Name: "timeUnitStartDate", Label: "Fecha de Inicio", Type: FieldDate, Required: true},
			{Name: "timeUnitEndDate", Label: "Fecha de Terminación", Type: FieldDate, Required: true},
		},
	},
	{
		Title:       "Información del Empleado",
		Description: "Ingrese los datos personales del empleado",
		Fields: []FormField{
			{Name: "employeeName", Label: "Nombre Completo", Type: FieldText, Required: true, Placeholder: "Ingrese el nombre completo del empleado"},
			{Name: "employeeNationality", Label: "Nacionalidad", Type: FieldText, Required: true, Placeholder: "Ingrese la nacionalidad del empleado"},
			{Name: "employeeCivilStatus", Label: "Estado Civil", Type: FieldSelect, Required: true, Options: CivilStatus},
			{Name: "employeeAddress", Label: "Dirección", Type: FieldText, Required: true, Placeholder: "Ingrese la dirección del empleado"},
		},
	},
	{
		Title:       "Detalles del Puesto",
		Description: "Ingrese la información del puesto y actividades del empleado",
		Fields: []FormField{
			{Name: "employeePosition", Label: "Puesto", Type: FieldText, Required: true, Placeholder: "Ingrese el puesto del empleado"},
			{Name: "employeeActivities", Label: "Actividades", Type: FieldTextarea, Required: true, Placeholder: "Ingrese las actividades del empleado"},
			{Name: "dailySalary", Label: "Salario Diario", Type: FieldText, Required: true, Placeholder: "Ingrese el salario diario"},
		},
	},
	{
		Title:       "Horario y Días de Trabajo",
		Description: "Configure el horario y los días de trabajo del empleado",
		Fields: []FormField{
			{Name: "workStartTime", Label: "Hora de Entrada", Type: FieldTime, Required: true},
			{Name: "workEndTime", Label: "Hora de Salida", Type: FieldTime, Required: true},
			{Name: "workingDays", Label: "Días de Trabajo", Type: FieldText, Required: true},
			{Name: "restDay", Label: "Día de Descanso", Type: FieldSelect, Required: true, Options: RestDays},
		},
	},
	{
		Title:       "Información de Pago",
		Description: "Configure el método de pago del empleado",
		Fields: []FormField{
			{Name: "paymentMethod", Label: "Método de Pago", Type: FieldSelect, Required: true, Options: PaymentMethods, DefaultValue: "EFECTIVO"},
			{Name: "bankName", Label: "Banco", Type: FieldSelect, Required: false, Options: Banks, Conditional: bankTransferOnly},
			{Name: "paymentDay", Label: "Día de Pago", Type: FieldSelect, Required: true, Options: PaymentDays},
		},
	},
	{
		Title:       "Prestaciones y Términos Adicionales",
		Description: "Opcional: prestaciones extra y términos particulares del contrato",
		Fields: []FormField{
			{Name: "benefits", Label: "Prestaciones Adicionales", Type: FieldMultiselect, Required: false, Options: Benefits},
			{Name: "additionalTerms", Label: "Términos Adicionales", Type: FieldTextarea, Required: false, Placeholder: "Términos particulares pactados entre las partes"},
		},
	},
}

var indefiniteSteps = []FormStep{
	{
		Title:       "Información del Contrato",
		Description: "Ingrese la fecha de inicio del contrato",
		Fields: []FormField{
			{Name: "ownerKey", Label: "Seleccionar Propietario", Type: FieldSelect, Required: true, Options: OwnerOptions},
			{Name: "branchKey", Label: "Seleccionar Sucursal", Type: FieldSelect, Required: true, Options: BranchOptions},
			{Name: "indefiniteStartDate", Label: "Fecha de Inicio", Type: FieldDate, Required: true, Placeholder: "Seleccione la fecha de inicio del contrato"},
		},
	},
	{
		Title:       "Información del Empleado",
		Description: "Ingrese los datos personales del empleado",
		Fields: []FormField{
			{Name: "employeeName", Label: "Nombre Completo", Type: FieldText, Required: true},
			{Name: "employeeNationality", Label: "Nacionalidad", Type: FieldText, Required: true},
			{Name: "employeeCivilStatus", Label: "Estado Civil", Type: FieldSelect, Required: true, Options: CivilStatus},
			{Name: "employeeAddress", Label: "Domicilio", Type: FieldText, Required: true},
		},
	},
	{
		Title:       "Detalles del Puesto",
		Description: "Ingrese los detalles del puesto y actividades",
		Fields: []FormField{
			{Name: "employeePosition", Label: "Puesto", Type: FieldText, Required: true},
			{Name: "employeeActivities", Label: "Actividades", Type: FieldTextarea, Required: true},
			{Name: "dailySalary", Label: "Salario Diario", Type: FieldText, Required: true},
		},
	},
	{
		Title:       "Horario y Días de Trabajo",
		Description: "Configure el horario y días de trabajo",
		Fields: []FormField{
			{Name: "workStartTime", Label: "Hora de Entrada", Type: FieldTime, Required: true},
			{Name: "workEndTime", Label: "Hora de Salida", Type: FieldTime, Required: true},
			{Name: "workingDays", Label: "Días de Trabajo", Type: FieldText, Required: true},
			{Name: "restDay", Label: "Día de Descanso", Type: FieldSelect, Required: true, Options: RestDays},
		},
	},
	{
		Title:       "Información de Pago",
		Description: "Configure el método de pago del empleado",
		Fields: []FormField{
			{Name: "paymentMethod", Label: "Método de Pago", Type: FieldSelect, Required: true, Options: PaymentMethods, DefaultValue: "EFECTIVO"},
			{Name: "bankName", Label: "Banco", Type: FieldSelect, Required: false, Options: Banks, Conditional: bankTransferOnly},
			{Name: "paymentDay", Label: "Día de Pago", Type: FieldSelect, Required: true, Options: PaymentDays},
		},
	},
}

var confidentialitySteps = []FormStep{
	{
		Title:       "Convenio de Confidencialidad",
		Description: "Ingrese la información básica para el convenio de confidencialidad",
		Fields: []FormField{
			{Name: "ownerKey", Label: "Seleccionar Propietario", Type: FieldSelect, Required: true, Options: OwnerOptions},
			{Name: "branchKey", Label: "Seleccionar Sucursal", Type: FieldSelect, Required: true, Options: BranchOptions},
			{Name: "employeeName", Label: "Nombre Completo del Empleado", Type: FieldText, Required: true},
			{Name: "confidentialityDate", Label: "Fecha del Convenio", Type: FieldDate, Required: true, Placeholder: "Seleccione la fecha del convenio"},
		},
	},
}

var voluntaryQuitSteps = []FormStep{
	{
		Title:       "Información General",
		Description: "Datos del trabajador para la carta de renuncia",
		Fields: []FormField{
			{Name: "employeeName", Label: "Nombre completo del trabajador", Type: FieldText, Required: true, Placeholder: "Ej: Juan Pérez García"},
			{Name: "position", Label: "Puesto de trabajo", Type: FieldText, Required: true, Placeholder: "Ej: Mesero, Cocinero, Cajero"},
			{Name: "voluntaryQuittingDate", Label: "Fecha de la renuncia", Type: FieldDate, Required: true},
		},
	},
}

var finiquitoSteps = []FormStep{
	{
		Title:       "Información del Finiquito",
		Description: "Datos necesarios para la carta de finiquito",
		Fields: []FormField{
			{Name: "employeeName", Label: "Nombre completo del trabajador", Type: FieldText, Required: true, Placeholder: "Ej: Juan Pérez García"},
			{Name: "position", Label: "Puesto de trabajo", Type: FieldText, Required: true, Placeholder: "Ej: Mesero, Cocinero, Cajero"},
			{Name: "finiquitoAmount", Label: "Cantidad del finiquito (en pesos)", Type: FieldNumber, Required: true, Placeholder: "Ej: 5000"},
			{Name: "finiquitoDate", Label: "Fecha del finiquito", Type: FieldDate, Required: true},
		},
	},
}

var actaSteps = []FormStep{
	{
		Title:       "Información General",
		Description: "Datos básicos del acta administrativa",
		Fields: []FormField{
			{Name: "employeeName", Label: "Nombre completo del trabajador", Type: FieldText, Required: true, Placeholder: "Ej: Juan Pérez García"},
			{Name: "position", Label: "Puesto de trabajo", Type: FieldText, Required: true, Placeholder: "Ej: Mesero, Cocinero, Cajero"},
			{Name: "actaDate", Label: "Fecha del incidente", Type: FieldDate, Required: true},
			{Name: "actaTime", Label: "Hora del incidente", Type: FieldTime, Required: true},
		},
	},
	{
		Title:       "Descripción del Incidente",
		Description: "Detalles de los hechos ocurridos",
		Fields: []FormField{
			{Name: "actaIncidentDescription", Label: "Descripción detallada del incidente", Type: FieldTextarea, Required: true, Placeholder: "Describa los hechos de manera detallada y objetiva..."},
		},
	},
	{
		Title:       "Primer Testigo",
		Description: "Información del primer testigo de cargo",
		Fields: []FormField{
			{Name: "actaWitness1Name", Label: "Nombre completo del primer testigo", Type: FieldText, Required: true, Placeholder: "Ej: María López Hernández"},
			{Name: "actaWitness1Address", Label: "Domicilio del primer testigo", Type: FieldText, Required: true, Placeholder: "Ej: Calle Principal #123, Col. Centro"},
			{Name: "actaWitness1Id", Label: "Número de credencial del primer testigo", Type: FieldText, Required: true, Placeholder: "Ej: 1234567890"},
			{Name: "actaWitness1Statement", Label: "Declaración del primer testigo", Type: FieldTextarea, Required: true, Placeholder: "Describa lo que presenció el testigo..."},
		},
	},
	{
		Title:       "Segundo Testigo",
		Description: "Información del segundo testigo de cargo",
		Fields: []FormField{
			{Name: "actaWitness2Name", Label: "Nombre completo del segundo testigo", Type: FieldText, Required: true, Placeholder: "Ej: Carlos Rodríguez Morales"},
			{Name: "actaWitness2Address", Label: "Domicilio del segundo testigo", Type: FieldText, Required: true, Placeholder: "Ej: Av. Reforma #456, Col. Moderna"},
			{Name: "actaWitness2Id", Label: "Número de credencial del segundo testigo", Type: FieldText, Required: true, Placeholder: "Ej: 0987654321"},
			{Name: "actaWitness2Statement", Label: "Declaración del segundo testigo", Type: FieldTextarea, Required: true, Placeholder: "Describa lo que presenció el testigo..."},
		},
	},
}
