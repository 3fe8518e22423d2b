package booking

// ServiceOption is one entry of the fixed price list. Prices are IDR and
// are copied onto the booking at creation time.
type ServiceOption struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var Catalog = []ServiceOption{
	{Code: "basic_grooming", Name: "Basic Grooming", Price: 85000},
	{Code: "full_grooming", Name: "Full Grooming & Styling", Price: 150000},
	{Code: "bathing", Name: "Bath & Blow Dry", Price: 60000},
	{Code: "nail_trim", Name: "Nail Trim & Ear Cleaning", Price: 40000},
	{Code: "vaccination", Name: "Vaccination", Price: 250000},
	{Code: "health_check", Name: "Health Check-up", Price: 175000},
	{Code: "day_boarding", Name: "Day Boarding", Price: 100000},
}

func ServiceByCode(code string) (ServiceOption, bool) {
	for _, s := range Catalog {
		if s.Code == code {
			return s, true
		}
	}
	return ServiceOption{}, false
}
