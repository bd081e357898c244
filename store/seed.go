package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/arcturus-labs/property-search/model"
)

// Seed data for the demo catalog. The generator mirrors the distribution of a
// real listing feed: price bands per property type, square footage tied to
// bedroom count, and a rolling window of listing dates.

var seedNeighborhoods = []string{
	"Mission District", "SOMA", "Pacific Heights", "Noe Valley",
	"Haight-Ashbury", "Castro", "Marina", "Russian Hill",
}

var seedCities = []string{"San Francisco", "Oakland", "Berkeley"}

var seedImages = []string{
	"/images/house1.png", "/images/house2.png", "/images/house3.png",
	"/images/house4.png", "/images/house5.png", "/images/house6.png",
	"/images/house7.png", "/images/house8.png", "/images/house9.png",
}

var seedKeywords = []string{"family home", "home", "property", "residence", "house", "dwelling"}

var seedDescriptionTemplates = []string{
	"Elegant %s showcasing designer touches throughout. Gourmet kitchen with stainless steel appliances and custom cabinetry. Located in prestigious neighborhood with tree-lined streets.",
	"Renovated %s with thoughtful updates and character preserved. Freshly painted interior with neutral tones. Move-in ready condition with all major systems updated.",
	"Spacious %s featuring multiple levels of living space. Formal dining room perfect for dinner parties. Ideal for large families or entertaining.",
	"Bright and airy %s with floor-to-ceiling windows throughout. Great natural light in every room creates cheerful atmosphere.",
	"Historic %s with architectural character and modern conveniences. Updated kitchen and bathrooms blend seamlessly with period details.",
	"Contemporary %s in prime location with stunning city views. Sleek design with high-end finishes throughout.",
	"Move-in ready %s with neutral decor throughout. All appliances included and in working order. Ready for immediate occupancy.",
	"Inviting %s with warm ambiance and comfortable living spaces. Cozy fireplace in family room perfect for winter evenings.",
	"Updated %s with modern amenities while maintaining original charm. Energy efficient windows reduce utility costs.",
	"Charming %s with character and exceptional curb appeal. Mature landscaping includes flowering shrubs and established trees.",
	"Stylish %s with contemporary design elements throughout. Open concept living area flows seamlessly to outdoor deck.",
	"Well-maintained %s with pride of ownership evident everywhere. Low maintenance yard perfect for busy lifestyles.",
	"Desirable %s in sought-after location. Close to award-winning restaurants, boutique shopping, and live entertainment venues.",
	"Bright %s with excellent natural light from south-facing windows. Energy efficient design includes solar panels reducing electric bills.",
	"Renovated %s with high-quality updates completed last year. New kitchen features quartz countertops and soft-close cabinetry.",
	"Comfortable %s in convenient location with easy access to major highways. Close to employment centers and business districts.",
}

var seedTitlePrefixes = map[model.PropertyType][]string{
	model.PropertyTypeHouse:     {"Charming Victorian", "Spacious", "Classic", "Modern", "Stunning", "Beautiful"},
	model.PropertyTypeCondo:     {"Modern Downtown", "Luxury", "Stylish", "Contemporary"},
	model.PropertyTypeApartment: {"Cozy", "Bright", "Updated", "Spacious"},
	model.PropertyTypeTownhouse: {"Move-In Ready", "Beautiful", "Modern"},
}

var seedLocationSuffixes = []string{"with Bay Views", "in Mission District", "Near Parks", "Downtown"}

// GenerateSeedCatalog produces a deterministic demo catalog of n generated
// listings plus a few hand-written showcase listings that match common
// searches. The same seed always yields the same catalog.
func GenerateSeedCatalog(n int, seed int64) (*Catalog, error) {
	rng := rand.New(rand.NewSource(seed))
	now := time.Now()

	records := make([]model.PropertyRecord, 0, n+3)
	for i := 0; i < n; i++ {
		records = append(records, generateRecord(rng, now, i+1))
	}
	records = append(records, showcaseRecords(now)...)

	return NewCatalog(records)
}

func generateRecord(rng *rand.Rand, now time.Time, ordinal int) model.PropertyRecord {
	propertyType := model.PropertyTypes[rng.Intn(len(model.PropertyTypes))]
	bedrooms := rng.Intn(6)

	var price int
	switch propertyType {
	case model.PropertyTypeApartment:
		price = 300_000 + rng.Intn(300_001)
	case model.PropertyTypeCondo:
		price = 500_000 + rng.Intn(400_001)
	case model.PropertyTypeTownhouse:
		price = 600_000 + rng.Intn(400_001)
	default: // house
		price = 700_000 + rng.Intn(800_001)
	}
	if bedrooms >= 4 {
		price = price * 12 / 10
	} else if bedrooms <= 1 {
		price = price * 8 / 10
	}

	var squareFeet int
	switch bedrooms {
	case 0:
		squareFeet = 400 + rng.Intn(301)
	case 1:
		squareFeet = 600 + rng.Intn(301)
	case 2:
		squareFeet = 900 + rng.Intn(501)
	case 3:
		squareFeet = 1400 + rng.Intn(601)
	case 4:
		squareFeet = 2000 + rng.Intn(801)
	default:
		squareFeet = 2800 + rng.Intn(1201)
	}

	daysAgo := rng.Intn(61)
	listingDate := now.AddDate(0, 0, -daysAgo).Format("2006-01-02")

	prefixes := seedTitlePrefixes[propertyType]
	title := prefixes[rng.Intn(len(prefixes))]
	switch {
	case bedrooms >= 3:
		title += " Family Home"
	case bedrooms == 0:
		title += " Studio Apartment"
	default:
		title += fmt.Sprintf(" %d Bedroom %s", bedrooms, titleCase(string(propertyType)))
	}
	if rng.Intn(2) == 0 {
		title += " " + seedLocationSuffixes[rng.Intn(len(seedLocationSuffixes))]
	}

	keyword := seedKeywords[rng.Intn(len(seedKeywords))]
	description := fmt.Sprintf(seedDescriptionTemplates[rng.Intn(len(seedDescriptionTemplates))], keyword)
	description += fmt.Sprintf(" This %s features %d square feet of living space.", propertyType, squareFeet)
	if rng.Intn(2) == 0 {
		description += " Close to public transit and shopping centers."
	}
	if rng.Intn(2) == 0 {
		description += " HOA includes water and trash."
	}

	return model.PropertyRecord{
		ID:           fmt.Sprintf("prop-%03d", ordinal),
		Title:        title,
		Description:  description,
		Price:        price,
		Bedrooms:     bedrooms,
		SquareFeet:   squareFeet,
		PropertyType: propertyType,
		ListingDate:  listingDate,
		Images:       []string{seedImages[(ordinal-1)%len(seedImages)]},
		Neighborhood: seedNeighborhoods[rng.Intn(len(seedNeighborhoods))],
		City:         seedCities[rng.Intn(len(seedCities))],
	}
}

// showcaseRecords are fixed listings that line up with common demo searches.
func showcaseRecords(now time.Time) []model.PropertyRecord {
	return []model.PropertyRecord{
		{
			ID:           "prop-special-001",
			Title:        "Charming Victorian Family Home with Bay Views",
			Description:  "Perfect family home in quiet neighborhood. Recently updated kitchen, large backyard ideal for children. Walking distance to top-rated schools and parks. This beautiful Victorian features original hardwood floors, high ceilings, and period details throughout.",
			Price:        750_000,
			Bedrooms:     3,
			SquareFeet:   1850,
			PropertyType: model.PropertyTypeHouse,
			ListingDate:  now.AddDate(0, 0, -2).Format("2006-01-02"),
			Images:       []string{seedImages[0]},
			Neighborhood: "Mission District",
			City:         "San Francisco",
		},
		{
			ID:           "prop-special-002",
			Title:        "Spacious Home in Mission District",
			Description:  "Wonderful family-friendly home with 4 bedrooms and 2.5 baths. Large living spaces perfect for entertaining. Updated kitchen with granite countertops. Close to public transit and shopping centers.",
			Price:        695_000,
			Bedrooms:     4,
			SquareFeet:   2200,
			PropertyType: model.PropertyTypeHouse,
			ListingDate:  now.AddDate(0, 0, -5).Format("2006-01-02"),
			Images:       []string{seedImages[1]},
			Neighborhood: "Mission District",
			City:         "San Francisco",
		},
		{
			ID:           "prop-special-003",
			Title:        "Move-In Ready Townhouse",
			Description:  "Beautiful townhouse perfect for growing families. Three bedrooms, 2.5 baths, and a private patio. Modern finishes throughout. Great location near schools, parks, and shopping centers.",
			Price:        599_000,
			Bedrooms:     3,
			SquareFeet:   1600,
			PropertyType: model.PropertyTypeTownhouse,
			ListingDate:  now.AddDate(0, 0, -1).Format("2006-01-02"),
			Images:       []string{seedImages[2]},
			Neighborhood: "Noe Valley",
			City:         "San Francisco",
		},
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
