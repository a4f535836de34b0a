package models

// Exhibit describes one gallery exhibit.
type Exhibit struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Duration    string   `json:"duration"`
	Highlights  []string `json:"highlights"`
	ImageURL    string   `json:"image_url"`
}

// TicketPrice is one catalog entry of the public price list.
type TicketPrice struct {
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type SpecialOffer struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Validity    string `json:"validity"`
}

// TourGuide availability maps weekday name to starting times.
type TourGuide struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Specialties  []string            `json:"specialties"`
	Languages    []string            `json:"languages"`
	Availability map[string][]string `json:"availability"`
	Rating       float64             `json:"rating"`
	Bio          string              `json:"bio"`
}

type TourType struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Duration     string  `json:"duration"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	MaxGroupSize int     `json:"max_group_size"`
}

type MuseumInfo struct {
	Name       string            `json:"name"`
	Address    string            `json:"address"`
	Phone      string            `json:"phone"`
	Email      string            `json:"email"`
	Website    string            `json:"website"`
	Hours      map[string]string `json:"hours"`
	Facilities []string          `json:"facilities"`
}

// MuseumData bundles the whole static catalog for the /api/museum/data route.
type MuseumData struct {
	Exhibits          []Exhibit      `json:"exhibits"`
	TicketPrices      []TicketPrice  `json:"ticket_prices"`
	SpecialOffers     []SpecialOffer `json:"special_offers"`
	TourGuides        []TourGuide    `json:"tour_guides"`
	TourTypes         []TourType     `json:"tour_types"`
	MuseumInfo        MuseumInfo     `json:"museum_info"`
	FeedbackQuestions []string       `json:"feedback_questions"`
}

// AvailableGuide is a guide narrowed to a single day's availability.
type AvailableGuide struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Specialties  []string `json:"specialties"`
	Languages    []string `json:"languages"`
	Availability []string `json:"availability"`
	Rating       float64  `json:"rating"`
}

type BookTourRequest struct {
	GuideID      string `json:"guide_id" binding:"required"`
	TourType     string `json:"tour_type" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	GroupSize    int    `json:"group_size"`
	VisitorName  string `json:"visitor_name" binding:"required"`
	VisitorEmail string `json:"visitor_email" binding:"required"`
}

type TourBookingConfirmation struct {
	GuideID      string `json:"guide_id"`
	TourType     string `json:"tour_type"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	GroupSize    int    `json:"group_size"`
	VisitorName  string `json:"visitor_name"`
	VisitorEmail string `json:"visitor_email"`
	BookingID    string `json:"booking_id"`
}
