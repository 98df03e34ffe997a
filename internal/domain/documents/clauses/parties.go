package clauses

import "fmt"

// Owner describe a la persona patrona con sus formas de género para
// interpolación en cláusulas.
type Owner struct {
	Name           string
	Gender         string // MASCULINO o FEMENINO
	GenderArticle  string // el / la
	OwnershipWord  string // dueño / dueña
	OwnershipWord2 string // propietario / propietaria
}

// Nationality devuelve el gentilicio concordado con el género.
func (o Owner) Nationality() string {
	if o.Gender == "MASCULINO" {
		return "MEXICANO"
	}
	return "MEXICANA"
}

type Branch struct {
	Name    string
	Address string
}

// owners y branches son catálogos cerrados: el formulario sólo ofrece
// estas claves y cualquier otra es un error de datos, no un faltante.
var owners = map[string]Owner{
	"olivia": {
		Name:           "OLIVIA GONZALEZ MERCADO",
		Gender:         "FEMENINO",
		GenderArticle:  "la",
		OwnershipWord:  "dueña",
		OwnershipWord2: "propietaria",
	},
	"jesus": {
		Name:           "JESUS ENRIQUE CAMPOS GONZALEZ",
		Gender:         "MASCULINO",
		GenderArticle:  "el",
		OwnershipWord:  "dueño",
		OwnershipWord2: "propietario",
	},
}

var branches = map[string]Branch{
	"main": {
		Name:    "BIRRIERIA LA PURISIMA",
		Address: "CARR. A URES KM 1 COLONIA SAN PEDRO EL SAUCITO DE ESTA CIUDAD",
	},
	"lasquintas": {
		Name:    "BIRRIERIA LA PURISIMA LAS QUINTAS",
		Address: "BLVD. PASEO DE LAS QUINTAS NUMERO 85 COLONIA MONTEBELLO DE ESTA CIUDAD",
	},
}

func lookupOwner(key string) (Owner, error) {
	o, ok := owners[key]
	if !ok {
		return Owner{}, fmt.Errorf("propietario desconocido: %q", key)
	}
	return o, nil
}

func lookupBranch(key string) (Branch, error) {
	b, ok := branches[key]
	if !ok {
		return Branch{}, fmt.Errorf("sucursal desconocida: %q", key)
	}
	return b, nil
}
