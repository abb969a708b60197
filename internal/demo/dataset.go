// FilePath: internal/demo/dataset.go
package demo

import (
	"github.com/honeyroute/honeyroute/internal/i18n"
	"github.com/honeyroute/honeyroute/internal/models"
)

// Text is a bilingual string pair. The flattened single-language value is
// derived at build time, never stored.
type Text struct {
	EN string
	ES string
}

// For selects the locale's variant. Both variants always exist for names,
// locations and labels in the base dataset; there is no fallback here.
func (t Text) For(locale i18n.Locale) string {
	if locale == i18n.LocaleES {
		return t.ES
	}
	return t.EN
}

// ForWithFallback selects the locale's variant, falling back to the other
// language when the selected one is empty. Only notes use this.
func (t Text) ForWithFallback(locale i18n.Locale) string {
	s := t.For(locale)
	if s != "" {
		return s
	}
	if locale == i18n.LocaleES {
		return t.EN
	}
	return t.ES
}

type baseApiary struct {
	ID        string
	Name      Text
	Location  Text
	Lat, Lng  float64
	Elevation float64
	Mgmt      models.Management
	Notes     Text
	Status    models.ApiaryStatus
	ImageURL  string
}

type baseHive struct {
	ID          string
	ApiaryID    string
	Label       Text
	Kind        models.HiveKind
	Lat, Lng    float64
	Status      models.ApiaryStatus
	HealthScore int
}

type baseAlert struct {
	ID         string
	Type       models.AlertType
	Severity   models.Severity
	AgeMinutes int
	Title      Text
	ListKey    string
	ListText   Text
	HiveID     string
	Cause      Text
	Details    Text
}

var baseApiaries = []baseApiary{
	{
		ID: "apiary-azul",
		Name: Text{
			EN: "Azul's Rooftop Apiary",
			ES: "Apiario en azotea de Azul",
		},
		Location: Text{
			EN: "CDMX · Rooftop test",
			ES: "CDMX · Prueba en azotea",
		},
		Lat:       19.4326,
		Lng:       -99.1332,
		Elevation: 2240,
		Mgmt:      models.ManagementIntegrated,
		Notes: Text{
			EN: "Urban rooftop test apiary with mixed flora and strong sun exposure.",
			ES: "Apiario urbano de prueba en azotea con flora mixta y fuerte exposición al sol.",
		},
		Status:   models.StatusAttention,
		ImageURL: "/images/apiary-azul2.jpg",
	},
	{
		ID: "apiary-hector",
		Name: Text{
			EN: "Héctor's Hillside Apiary",
			ES: "Apiario en ladera de Héctor",
		},
		Location: Text{
			EN: "Hillside near Pachuca",
			ES: "Ladera cerca de Pachuca",
		},
		Lat:       20.116,
		Lng:       -98.733,
		Elevation: 2400,
		Mgmt:      models.ManagementOrganic,
		Notes: Text{
			EN: "Hillside apiary with strong winds and cooler nights.",
			ES: "Apiario en ladera con vientos fuertes y noches más frías.",
		},
		Status:   models.StatusHealthy,
		ImageURL: "/images/apiary-hector.jpg",
	},
}

var baseHives = []baseHive{
	{
		ID:       "hive-azul-a01",
		ApiaryID: "apiary-azul",
		Label: Text{
			EN: "Hive A-01 · Rooftop",
			ES: "Colmena A-01 · Azotea",
		},
		Kind:        models.KindLangstroth,
		Lat:         19.4329,
		Lng:         -99.1334,
		Status:      models.StatusAttention,
		HealthScore: 78,
	},
	{
		ID:       "hive-azul-a02",
		ApiaryID: "apiary-azul",
		Label: Text{
			EN: "Hive A-02 · Shaded",
			ES: "Colmena A-02 · Sombra",
		},
		Kind:        models.KindLangstroth,
		Lat:         19.4323,
		Lng:         -99.1331,
		Status:      models.StatusHealthy,
		HealthScore: 88,
	},
	{
		ID:       "hive-azul-a03",
		ApiaryID: "apiary-azul",
		Label: Text{
			EN: "Hive A-03 · Experimental",
			ES: "Colmena A-03 · Experimental",
		},
		Kind:        models.KindTopBar,
		Lat:         19.433,
		Lng:         -99.1337,
		Status:      models.StatusCritical,
		HealthScore: 52,
	},
	{
		ID:       "hive-hector-h01",
		ApiaryID: "apiary-hector",
		Label: Text{
			EN: "Hive H-01 · Hillside",
			ES: "Colmena H-01 · Ladera",
		},
		Kind:        models.KindLangstroth,
		Lat:         20.1163,
		Lng:         -98.7332,
		Status:      models.StatusHealthy,
		HealthScore: 90,
	},
	{
		ID:       "hive-hector-h02",
		ApiaryID: "apiary-hector",
		Label: Text{
			EN: "Hive H-02 · Windy",
			ES: "Colmena H-02 · Viento",
		},
		Kind:        models.KindWarre,
		Lat:         20.117,
		Lng:         -98.734,
		Status:      models.StatusAttention,
		HealthScore: 74,
	},
}

var baseAlerts = []baseAlert{
	{
		ID:         "a1",
		Type:       models.AlertTemp,
		Severity:   models.SeverityHigh,
		AgeMinutes: 12,
		Title: Text{
			EN: "High temperature detected",
			ES: "Temperatura alta detectada",
		},
		ListKey: "alerts.items.a1.list",
		ListText: Text{
			EN: "High Temperature",
			ES: "Temperatura alta",
		},
		HiveID: "hive-azul-a01",
		Cause: Text{
			EN: "Brood nest temperature above optimal range for >30 minutes.",
			ES: "Temperatura del nido de cría por encima del rango óptimo durante >30 minutos.",
		},
		Details: Text{
			EN: "Sensors detected a sustained brood nest temperature above 37.5°C. Ventilation may be insufficient during peak sun hours on the rooftop.",
			ES: "Los sensores detectaron una temperatura sostenida del nido de cría por encima de 37.5°C. La ventilación puede ser insuficiente durante las horas de mayor sol en la azotea.",
		},
	},
	{
		ID:         "a2",
		Type:       models.AlertHumidity,
		Severity:   models.SeverityMedium,
		AgeMinutes: 25,
		Title: Text{
			EN: "Humidity out of optimal range",
			ES: "Humedad fuera del rango óptimo",
		},
		ListKey: "alerts.items.a2.list",
		ListText: Text{
			EN: "Humidity Alert",
			ES: "Alerta de humedad",
		},
		HiveID: "hive-azul-a02",
		Cause: Text{
			EN: "Internal humidity above recommended range for brood rearing.",
			ES: "Humedad interna por encima del rango recomendado para la cría.",
		},
		Details: Text{
			EN: "Relative humidity has been above 80% for the last 2 hours. Check for condensation on inner cover and airflow obstructions.",
			ES: "La humedad relativa ha estado por encima del 80% durante las últimas 2 horas. Revisa condensación en la tapa interior y obstrucciones de flujo de aire.",
		},
	},
	{
		ID:         "a3",
		Type:       models.AlertQueen,
		Severity:   models.SeverityHigh,
		AgeMinutes: 55,
		Title: Text{
			EN: "Queen status requires attention",
			ES: "El estado de la reina requiere atención",
		},
		ListKey: "alerts.items.a3.list",
		ListText: Text{
			EN: "Queen Status",
			ES: "Estado de la reina",
		},
		HiveID: "hive-azul-a03",
		Cause: Text{
			EN: "Irregular queen pattern and drop in brood area.",
			ES: "Patrón irregular de la reina y reducción del área de cría.",
		},
		Details: Text{
			EN: "Last inspection detected patchy brood pattern and reduced egg laying. Colony may be preparing for supersedure or queen may be failing.",
			ES: "La última inspección detectó un patrón de cría irregular y menor puesta de huevos. La colonia puede estar preparando un reemplazo o la reina puede estar fallando.",
		},
	},
	{
		ID:         "a4",
		Type:       models.AlertTemp,
		Severity:   models.SeverityLow,
		AgeMinutes: 90,
		Title: Text{
			EN: "Low temperature detected",
			ES: "Temperatura baja detectada",
		},
		ListKey: "alerts.items.a4.list",
		ListText: Text{
			EN: "Low Temperature",
			ES: "Temperatura baja",
		},
		HiveID: "hive-hector-h01",
		Cause: Text{
			EN: "Brood nest temperature slightly below target range overnight.",
			ES: "Temperatura del nido de cría ligeramente por debajo del rango objetivo durante la noche.",
		},
		Details: Text{
			EN: "Short low-temperature event detected before sunrise. Usually safe, but monitor if pattern repeats in the next days.",
			ES: "Evento corto de baja temperatura detectado antes del amanecer. Normalmente seguro, pero vigila si el patrón se repite en los próximos días.",
		},
	},
	{
		ID:         "a5",
		Type:       models.AlertHumidity,
		Severity:   models.SeverityHigh,
		AgeMinutes: 180,
		Title: Text{
			EN: "Humidity below optimal range",
			ES: "Humedad por debajo del rango óptimo",
		},
		ListText: Text{
			EN: "Low Humidity",
			ES: "Humedad baja",
		},
		HiveID: "hive-hector-h02",
		Cause: Text{
			EN: "Internal humidity dropped below 45% for extended period.",
			ES: "La humedad interna cayó por debajo del 45% durante un periodo prolongado.",
		},
		Details: Text{
			EN: "Dry, windy conditions plus strong ventilation may be reducing internal humidity. Risk of brood drying if it persists.",
			ES: "Condiciones secas y ventosas junto con fuerte ventilación pueden estar reduciendo la humedad interna. Riesgo de secado de la cría si persiste.",
		},
	},
}
