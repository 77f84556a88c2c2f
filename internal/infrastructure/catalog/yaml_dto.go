package catalog

type yamlSeed struct {
	Properties         []yamlProperty     `yaml:"properties"`
	Neighborhoods      []yamlNeighborhood `yaml:"neighborhoods"`
	EnvironmentalRisks []yamlRisk         `yaml:"environmental_risks"`
	FinancingOffers    []yamlOffer        `yaml:"financing_offers"`
	Consultants        []yamlConsultant   `yaml:"consultants"`
	Inspectors         []yamlInspector    `yaml:"inspectors"`
}

type yamlText struct {
	EN string `yaml:"en"`
	AR string `yaml:"ar"`
}

type yamlList struct {
	EN []string `yaml:"en"`
	AR []string `yaml:"ar"`
}

type yamlProperty struct {
	ID          string   `yaml:"id"`
	Title       yamlText `yaml:"title"`
	Price       string   `yaml:"price"`
	SizeSqm     float64  `yaml:"size_sqm"`
	Bedrooms    int      `yaml:"bedrooms"`
	Bathrooms   int      `yaml:"bathrooms"`
	Type        string   `yaml:"type"`
	Area        string   `yaml:"area"`
	Rating      float64  `yaml:"rating"`
	Verified    bool     `yaml:"verified"`
	DateAdded   string   `yaml:"date_added"`
	ROI         string   `yaml:"roi"`
	Description yamlText `yaml:"description"`
	Features    yamlList `yaml:"features"`
	Location    struct {
		Lat float64 `yaml:"lat"`
		Lng float64 `yaml:"lng"`
	} `yaml:"location"`
}

type yamlNeighborhood struct {
	Area           string  `yaml:"area"`
	Safety         float64 `yaml:"safety"`
	Schools        float64 `yaml:"schools"`
	Healthcare     float64 `yaml:"healthcare"`
	Shopping       float64 `yaml:"shopping"`
	Transportation float64 `yaml:"transportation"`
}

type yamlRisk struct {
	Area         string  `yaml:"area"`
	Flood        float64 `yaml:"flood"`
	AirPollution float64 `yaml:"air_pollution"`
	HeatIsland   float64 `yaml:"heat_island"`
	WaterQuality float64 `yaml:"water_quality"`
}

type yamlOffer struct {
	Bank                  yamlText `yaml:"bank"`
	InterestRate          float64  `yaml:"interest_rate"`
	MaxTermYears          int      `yaml:"max_term_years"`
	MinDownPaymentPercent float64  `yaml:"min_down_payment_percent"`
	ProcessingFeePercent  float64  `yaml:"processing_fee_percent"`
	ShariaCompliant       bool     `yaml:"sharia_compliant"`
	SpecialOffers         []string `yaml:"special_offers"`
	Requirements          []string `yaml:"requirements"`
}

type yamlConsultant struct {
	ID              string   `yaml:"id"`
	Name            yamlText `yaml:"name"`
	Specialization  string   `yaml:"specialization"`
	Languages       []string `yaml:"languages"`
	YearsExperience int      `yaml:"years_experience"`
	Rating          float64  `yaml:"rating"`
	Phone           string   `yaml:"phone"`
	Email           string   `yaml:"email"`
}

type yamlInspector struct {
	ID             string   `yaml:"id"`
	Name           yamlText `yaml:"name"`
	Company        string   `yaml:"company"`
	ServiceAreas   []string `yaml:"service_areas"`
	Certifications []string `yaml:"certifications"`
	Rating         float64  `yaml:"rating"`
	BaseFee        string   `yaml:"base_fee"`
}
