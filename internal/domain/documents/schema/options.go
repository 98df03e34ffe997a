package schema

// Catálogos de opciones compartidos por las tablas de pasos.

var CivilStatus = []Option{
	{Value: "SOLTERO", Label: "Soltero(a)"},
	{Value: "CASADO", Label: "Casado(a)"},
	{Value: "DIVORCIADO", Label: "Divorciado(a)"},
	{Value: "VIUDO", Label: "Viudo(a)"},
	{Value: "UNION LIBRE", Label: "Unión Libre"},
}

var RestDays = []Option{
	{Value: "LUNES", Label: "Lunes"},
	{Value: "MARTES", Label: "Martes"},
	{Value: "MIERCOLES", Label: "Miércoles"},
	{Value: "JUEVES", Label: "Jueves"},
	{Value: "VIERNES", Label: "Viernes"},
	{Value: "SABADO", Label: "Sábado"},
	{Value: "DOMINGO", Label: "Domingo"},
}

var PaymentDays = []Option{
	{Value: "VIERNES", Label: "Viernes"},
	{Value: "SABADO", Label: "Sábado"},
	{Value: "DOMINGO", Label: "Domingo"},
	{Value: "LUNES", Label: "Lunes"},
	{Value: "MARTES", Label: "Martes"},
	{Value: "MIERCOLES", Label: "Miércoles"},
	{Value: "JUEVES", Label: "Jueves"},
	{Value: "QUINCENAL", Label: "Quincenal"},
	{Value: "MENSUAL", Label: "Mensual"},
}

var PaymentMethods = []Option{
	{Value: "TRANSFERENCIA", Label: "Transferencia Bancaria"},
	{Value: "EFECTIVO", Label: "Efectivo"},
}

var Banks = []Option{
	{Value: "BANAMEX", Label: "Banamex"},
	{Value: "BANORTE", Label: "Banorte"},
	{Value: "BBVA", Label: "BBVA"},
	{Value: "SANTANDER", Label: "Santander"},
	{Value: "HSBC", Label: "HSBC"},
	{Value: "SCOTIABANK", Label: "Scotiabank"},
	{Value: "BANCO AZTECA", Label: "Banco Azteca"},
	{Value: "BANCO DEL BAJIO", Label: "Banco del Bajío"},
	{Value: "BANCOPPEL", Label: "Bancoppel"},
	{Value: "INBURSA", Label: "Inbursa"},
}

var OwnerOptions = []Option{
	{Value: "olivia", Label: "Olivia Gonzalez Mercado"},
	{Value: "jesus", Label: "Jesus Enrique Campos Gonzalez"},
}

var BranchOptions = []Option{
	{Value: "main", Label: "BIRRIERIA LA PURISIMA"},
	{Value: "lasquintas", Label: "BIRRIERIA LA PURISIMA SUC. LAS QUINTAS"},
}

var Benefits = []Option{
	{Value: "VALES DE DESPENSA", Label: "Vales de despensa"},
	{Value: "COMEDOR", Label: "Comedor"},
	{Value: "BONO DE PUNTUALIDAD", Label: "Bono de puntualidad"},
	{Value: "BONO DE PRODUCTIVIDAD", Label: "Bono de productividad"},
}
