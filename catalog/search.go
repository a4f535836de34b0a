package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Document is one searchable snippet of catalog text, used to ground chat
// answers in museum facts.
type Document struct {
	Kind string
	Text string
}

// Documents flattens the catalog into retrievable snippets.
func Documents() []Document {
	var docs []Document

	for _, exhibit := range exhibits {
		docs = append(docs, Document{
			Kind: "exhibit",
			Text: fmt.Sprintf("Exhibit: %s\nDescription: %s\nLocation: %s\nDuration: %s\nHighlights: %s",
				exhibit.Name, exhibit.Description, exhibit.Location, exhibit.Duration, strings.Join(exhibit.Highlights, ", ")),
		})
	}
	for _, price := range ticketPrices {
		docs = append(docs, Document{
			Kind: "ticket",
			Text: fmt.Sprintf("Ticket Type: %s\nPrice: $%.2f\nDescription: %s", price.Type, price.Price, price.Description),
		})
	}
	for _, offer := range specialOffers {
		docs = append(docs, Document{
			Kind: "offer",
			Text: fmt.Sprintf("Special Offer: %s\nDescription: %s\nValidity: %s", offer.Name, offer.Description, offer.Validity),
		})
	}
	for _, guide := range tourGuides {
		docs = append(docs, Document{
			Kind: "guide",
			Text: fmt.Sprintf("Tour Guide: %s\nSpecialties: %s\nLanguages: %s\nBio: %s",
				guide.Name, strings.Join(guide.Specialties, ", "), strings.Join(guide.Languages, ", "), guide.Bio),
		})
	}
	for _, tour := range tourTypes {
		docs = append(docs, Document{
			Kind: "tour",
			Text: fmt.Sprintf("Tour Type: %s\nDuration: %s\nDescription: %s\nPrice: $%.2f\nMax Group Size: %d",
				tour.Name, tour.Duration, tour.Description, tour.Price, tour.MaxGroupSize),
		})
	}

	docs = append(docs, Document{
		Kind: "museum_info",
		Text: fmt.Sprintf("Museum: %s\nAddress: %s\nPhone: %s\nEmail: %s\nWebsite: %s\nFacilities: %s",
			museumInfo.Name, museumInfo.Address, museumInfo.Phone, museumInfo.Email, museumInfo.Website,
			strings.Join(museumInfo.Facilities, ", ")),
	})

	var hours strings.Builder
	hours.WriteString("Museum Hours:\n")
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		fmt.Fprintf(&hours, "%s: %s\n", day, museumInfo.Hours[day])
	}
	docs = append(docs, Document{Kind: "hours", Text: hours.String()})

	return docs
}

// Search returns up to k documents ranked by naive keyword overlap with the
// query. It is a stand-in for the external retrieval collaborator and only
// needs to be good enough to ground chat answers in catalog facts.
func Search(query string, k int) []Document {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 || k <= 0 {
		return nil
	}

	type scored struct {
		doc   Document
		score int
	}

	var matches []scored
	for _, doc := range Documents() {
		text := strings.ToLower(doc.Text)
		score := 0
		for _, term := range terms {
			score += strings.Count(text, term)
		}
		if score > 0 {
			matches = append(matches, scored{doc: doc, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	results := make([]Document, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.doc)
	}
	return results
}
