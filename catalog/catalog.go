// Package catalog holds the museum's static reference data: exhibits,
// admission prices, special offers, tour guides, tour types, opening hours
// and feedback questions. In a production deployment this would come from a
// CMS or database; the data set itself is fixed for now.
package catalog

import "museumguide-backend/models"

var exhibits = []models.Exhibit{
	{
		ID:          "exh-001",
		Name:        "Ancient Civilizations",
		Description: "Explore artifacts from ancient Egyptian, Greek, and Roman civilizations.",
		Location:    "First Floor, Gallery A",
		Duration:    "45 minutes",
		Highlights:  []string{"Pharaoh's Sarcophagus", "Greek Vases", "Roman Coins"},
		ImageURL:    "https://example.com/images/ancient-civilizations.jpg",
	},
	{
		ID:          "exh-002",
		Name:        "Renaissance Art",
		Description: "Masterpieces from the Italian Renaissance period.",
		Location:    "Second Floor, Gallery B",
		Duration:    "60 minutes",
		Highlights:  []string{"Da Vinci Sketches", "Michelangelo Replicas", "Botticelli Paintings"},
		ImageURL:    "https://example.com/images/renaissance-art.jpg",
	},
	{
		ID:          "exh-003",
		Name:        "Modern Art",
		Description: "Contemporary art from the 20th and 21st centuries.",
		Location:    "Third Floor, Gallery C",
		Duration:    "30 minutes",
		Highlights:  []string{"Picasso Works", "Warhol Prints", "Contemporary Installations"},
		ImageURL:    "https://example.com/images/modern-art.jpg",
	},
	{
		ID:          "exh-004",
		Name:        "Natural History",
		Description: "Fossils, minerals, and specimens from around the world.",
		Location:    "First Floor, Gallery D",
		Duration:    "45 minutes",
		Highlights:  []string{"Dinosaur Skeletons", "Meteorite Collection", "Ocean Life Dioramas"},
		ImageURL:    "https://example.com/images/natural-history.jpg",
	},
	{
		ID:          "exh-005",
		Name:        "Interactive Science",
		Description: "Hands-on exhibits exploring physics, chemistry, and biology.",
		Location:    "Basement Level, Gallery E",
		Duration:    "60 minutes",
		Highlights:  []string{"Electricity Demonstrations", "Chemistry Lab", "Virtual Reality Experiences"},
		ImageURL:    "https://example.com/images/interactive-science.jpg",
	},
}

var ticketPrices = []models.TicketPrice{
	{Type: "Adult", Price: 25.00, Description: "Standard admission for adults (18+ years)"},
	{Type: "Child", Price: 12.00, Description: "Admission for children (5-17 years)"},
	{Type: "Senior", Price: 18.00, Description: "Admission for seniors (65+ years)"},
	{Type: "Student", Price: 15.00, Description: "Admission for students with valid ID"},
	{Type: "Family", Price: 65.00, Description: "Admission for 2 adults and up to 3 children"},
	{Type: "Group", Price: 20.00, Description: "Per person for groups of 10 or more (must be booked in advance)"},
}

var specialOffers = []models.SpecialOffer{
	{
		Name:        "Free Entry Day",
		Description: "First Sunday of every month is free entry for all visitors",
		Validity:    "First Sunday of each month",
	},
	{
		Name:        "Student Discount",
		Description: "50% off for students with valid ID on Wednesdays",
		Validity:    "Every Wednesday",
	},
	{
		Name:        "Family Pass",
		Description: "Buy one adult ticket, get one child ticket free",
		Validity:    "Weekends only",
	},
}

var tourGuides = []models.TourGuide{
	{
		ID:          "guide-001",
		Name:        "Dr. Sarah Johnson",
		Specialties: []string{"Ancient Civilizations", "Renaissance Art"},
		Languages:   []string{"English", "French", "Spanish"},
		Availability: map[string][]string{
			"Monday":    {"10:00", "14:00", "16:00"},
			"Wednesday": {"10:00", "14:00", "16:00"},
			"Friday":    {"10:00", "14:00", "16:00"},
			"Saturday":  {"11:00", "15:00"},
		},
		Rating: 4.8,
		Bio:    "Dr. Johnson has a Ph.D. in Art History and has been guiding tours for 15 years.",
	},
	{
		ID:          "guide-002",
		Name:        "Prof. Michael Chen",
		Specialties: []string{"Modern Art", "Interactive Science"},
		Languages:   []string{"English", "Chinese", "Japanese"},
		Availability: map[string][]string{
			"Tuesday":  {"10:00", "14:00", "16:00"},
			"Thursday": {"10:00", "14:00", "16:00"},
			"Sunday":   {"11:00", "15:00"},
		},
		Rating: 4.9,
		Bio:    "Prof. Chen is a former university professor with expertise in contemporary art movements.",
	},
	{
		ID:          "guide-003",
		Name:        "Maria Rodriguez",
		Specialties: []string{"Natural History", "Interactive Science"},
		Languages:   []string{"English", "Spanish", "Portuguese"},
		Availability: map[string][]string{
			"Monday":    {"11:00", "15:00"},
			"Wednesday": {"11:00", "15:00"},
			"Friday":    {"11:00", "15:00"},
			"Saturday":  {"10:00", "14:00"},
		},
		Rating: 4.7,
		Bio:    "Maria has a background in biology and environmental science, with 10 years of museum experience.",
	},
	{
		ID:          "guide-004",
		Name:        "Hans Schmidt",
		Specialties: []string{"Renaissance Art", "Modern Art"},
		Languages:   []string{"English", "German", "French"},
		Availability: map[string][]string{
			"Tuesday":  {"11:00", "15:00"},
			"Thursday": {"11:00", "15:00"},
			"Sunday":   {"10:00", "14:00"},
		},
		Rating: 4.6,
		Bio:    "Hans is an art historian specializing in European art from the 15th to 20th centuries.",
	},
}

var tourTypes = []models.TourType{
	{
		ID:           "tour-001",
		Name:         "Highlights Tour",
		Duration:     "60 minutes",
		Description:  "A guided tour of the museum's most important exhibits",
		Price:        15.00,
		MaxGroupSize: 15,
	},
	{
		ID:           "tour-002",
		Name:         "In-Depth Art Tour",
		Duration:     "90 minutes",
		Description:  "Detailed exploration of the art collections",
		Price:        25.00,
		MaxGroupSize: 10,
	},
	{
		ID:           "tour-003",
		Name:         "Science Discovery Tour",
		Duration:     "75 minutes",
		Description:  "Interactive tour focusing on the science exhibits",
		Price:        20.00,
		MaxGroupSize: 12,
	},
	{
		ID:           "tour-004",
		Name:         "Family Tour",
		Duration:     "45 minutes",
		Description:  "Engaging tour designed for families with children",
		Price:        30.00,
		MaxGroupSize: 20,
	},
}

var museumInfo = models.MuseumInfo{
	Name:    "Global Museum of Art and Science",
	Address: "123 Museum Avenue, Cultural District, City",
	Phone:   "+1 (555) 123-4567",
	Email:   "info@globalmuseum.org",
	Website: "www.globalmuseum.org",
	Hours: map[string]string{
		"Monday":    "9:00 AM - 5:00 PM",
		"Tuesday":   "9:00 AM - 5:00 PM",
		"Wednesday": "9:00 AM - 8:00 PM",
		"Thursday":  "9:00 AM - 5:00 PM",
		"Friday":    "9:00 AM - 5:00 PM",
		"Saturday":  "10:00 AM - 6:00 PM",
		"Sunday":    "10:00 AM - 6:00 PM",
	},
	Facilities: []string{
		"Cafeteria",
		"Gift Shop",
		"Wheelchair Access",
		"Audio Guides",
		"Free Wi-Fi",
		"Cloakroom",
		"Restrooms",
	},
}

var feedbackQuestions = []string{
	"How would you rate your overall museum experience?",
	"How satisfied were you with the exhibits?",
	"How helpful was the staff?",
	"How would you rate the value for money?",
	"Would you recommend the museum to others?",
	"What aspects of your visit could be improved?",
	"Which exhibits did you enjoy the most?",
	"Did you use any of our guided tours? If yes, how was your experience?",
}

// All returns the complete catalog.
func All() models.MuseumData {
	return models.MuseumData{
		Exhibits:          exhibits,
		TicketPrices:      ticketPrices,
		SpecialOffers:     specialOffers,
		TourGuides:        tourGuides,
		TourTypes:         tourTypes,
		MuseumInfo:        museumInfo,
		FeedbackQuestions: feedbackQuestions,
	}
}

// TourTypes returns the bookable tour formats.
func TourTypes() []models.TourType {
	return tourTypes
}

// GuidesAvailableOn returns guides working on the given weekday, with their
// availability narrowed to that day's starting times.
func GuidesAvailableOn(weekday string) []models.AvailableGuide {
	var available []models.AvailableGuide
	for _, guide := range tourGuides {
		times, ok := guide.Availability[weekday]
		if !ok {
			continue
		}
		available = append(available, models.AvailableGuide{
			ID:           guide.ID,
			Name:         guide.Name,
			Specialties:  guide.Specialties,
			Languages:    guide.Languages,
			Availability: times,
			Rating:       guide.Rating,
		})
	}
	return available
}
