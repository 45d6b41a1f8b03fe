// Package fixtures holds the default master data the seed command loads into
// an empty database: the crane taxonomy and the certificate types tied to it.
package fixtures

type ModelFixture struct {
	Brand          string
	Name           string
	MaxLoadTonnes  float64
	MaxHeightMeter float64
}

type TypeFixture struct {
	Name   string
	Code   string
	Models []ModelFixture
}

type CategoryFixture struct {
	Name         string
	Description  string
	Types        []TypeFixture
	Certificates []string // names from CertificateTypes
}

type CertificateFixture struct {
	Name string
	Code string
}

// CertificateTypes are the certifications Danish crane operators hold.
func CertificateTypes() []CertificateFixture {
	return []CertificateFixture{
		{Name: "Kranbasis", Code: "KB"},
		{Name: "Mobilkran certifikat B", Code: "MK-B"},
		{Name: "Mobilkran certifikat E", Code: "MK-E"},
		{Name: "Tårnkran certifikat D", Code: "TK-D"},
		{Name: "Teleskoplæsser certifikat", Code: "TL"},
	}
}

// CraneTaxonomy is the default category, type and model tree.
func CraneTaxonomy() []CategoryFixture {
	return []CategoryFixture{
		{
			Name:         "Mobilkran",
			Description:  "Selvkørende kraner på gummihjul",
			Certificates: []string{"Kranbasis", "Mobilkran certifikat B"},
			Types: []TypeFixture{
				{
					Name: "Mobilkran under 30 tm",
					Code: "MOB-30",
					Models: []ModelFixture{
						{Brand: "Liebherr", Name: "LTM 1030-2.1", MaxLoadTonnes: 35, MaxHeightMeter: 30},
						{Brand: "Grove", Name: "GMK3050-2", MaxLoadTonnes: 50, MaxHeightMeter: 38},
					},
				},
				{
					Name: "Mobilkran over 30 tm",
					Code: "MOB-XL",
					Models: []ModelFixture{
						{Brand: "Liebherr", Name: "LTM 1230-5.1", MaxLoadTonnes: 230, MaxHeightMeter: 75},
					},
				},
			},
		},
		{
			Name:         "Tårnkran",
			Description:  "Stationære tårnkraner",
			Certificates: []string{"Kranbasis", "Tårnkran certifikat D"},
			Types: []TypeFixture{
				{
					Name: "Tårnkran",
					Code: "TK",
					Models: []ModelFixture{
						{Brand: "Potain", Name: "MDT 219", MaxLoadTonnes: 10, MaxHeightMeter: 64},
						{Brand: "Liebherr", Name: "150 EC-B 8", MaxLoadTonnes: 8, MaxHeightMeter: 71},
					},
				},
			},
		},
		{
			Name:         "Teleskoplæsser",
			Description:  "Teleskoplæssere med kranfunktion",
			Certificates: []string{"Teleskoplæsser certifikat"},
			Types: []TypeFixture{
				{
					Name: "Teleskoplæsser",
					Code: "TL",
					Models: []ModelFixture{
						{Brand: "Manitou", Name: "MRT 2660", MaxLoadTonnes: 6, MaxHeightMeter: 26},
					},
				},
			},
		},
	}
}
