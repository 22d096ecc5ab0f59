package repositories

import (
	"context"

	"jersey-hub/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// seed loads the demo catalog so a fresh process serves a browsable storefront.
func (s *MemStore) seed() {
	ctx := context.Background()

	jerseys := []models.CreateJerseyRequest{
		{
			Name:          "Barcelona Home 2024",
			Price:         249900,
			OriginalPrice: intPtr(349900),
			ImageURL:      "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Category:      models.CategoryClub,
			Tags:          []string{"featured", "popular"},
			Team:          "FC Barcelona",
			Season:        strPtr("2024-25"),
			Description:   strPtr("Official Barcelona home jersey with Nike Dri-FIT technology"),
		},
		{
			Name:          "Real Madrid Home 2024",
			Price:         269900,
			OriginalPrice: intPtr(369900),
			ImageURL:      "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Category:      models.CategoryClub,
			Tags:          []string{"featured", "popular"},
			Team:          "Real Madrid",
			Season:        strPtr("2024-25"),
			Description:   strPtr("Official Real Madrid home jersey - Los Blancos iconic white"),
		},
		{
			Name:          "Manchester United Home 2024",
			Price:         259900,
			OriginalPrice: intPtr(359900),
			ImageURL:      "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Category:      models.CategoryClub,
			Tags:          []string{"featured"},
			Team:          "Manchester United",
			Season:        strPtr("2024-25"),
			Description:   strPtr("Official Manchester United home jersey - Red Devils"),
		},
		{
			Name:          "Liverpool Home 2024",
			Price:         239900,
			OriginalPrice: intPtr(339900),
			ImageURL:      "https://images.unsplash.com/photo-1577223625816-7546f13df25d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Category:      models.CategoryClub,
			Tags:          []string{"featured"},
			Team:          "Liverpool FC",
			Season:        strPtr("2024-25"),
			Description:   strPtr("Official Liverpool home jersey - You'll Never Walk Alone"),
		},
		{
			Name:          "Argentina World Cup 2022",
			Price:         179900,
			OriginalPrice: intPtr(299900),
			ImageURL:      "https://images.unsplash.com/photo-1574629810360-7efbbe195018?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Category:      models.CategoryNational,
			Tags:          []string{"top-deals", "world-cup"},
			Team:          "Argentina National Team",
			Season:        strPtr("2022"),
			Description:   strPtr("Messi's World Cup winning jersey - Historic victory"),
		},
		{
			Name:          "Brazil Home 2024",
			Price:         189900,
			OriginalPrice: intPtr(289900),
			ImageURL:      "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Category:      models.CategoryNational,
			Tags:          []string{"top-deals"},
			Team:          "Brazil National Team",
			Season:        strPtr("2024"),
			Description:   strPtr("Seleção jersey - Jogo Bonito tradition"),
		},
		{
			Name:        "Manchester City Home 2024",
			Price:       279900,
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Category:    models.CategoryClub,
			Tags:        []string{"new-arrivals", "premium"},
			Team:        "Manchester City",
			Season:      strPtr("2024-25"),
			Description: strPtr("Citizens home jersey - Treble winners edition"),
		},
		{
			Name:        "Arsenal Home 2024",
			Price:       259900,
			ImageURL:    "https://images.unsplash.com/photo-1577223625816-7546f13df25d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Category:    models.CategoryClub,
			Tags:        []string{"new-arrivals"},
			Team:        "Arsenal FC",
			Season:      strPtr("2024-25"),
			Description: strPtr("Gunners home jersey - North London pride"),
		},
		{
			Name:          "PSG Home 2024",
			Price:         289900,
			OriginalPrice: intPtr(389900),
			ImageURL:      "https://images.unsplash.com/photo-1574629810360-7efbbe195018?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Category:      models.CategoryClub,
			Tags:          []string{"featured", "premium"},
			Team:          "Paris Saint-Germain",
			Season:        strPtr("2024-25"),
			Description:   strPtr("PSG home jersey with Mbappe legacy design"),
		},
		{
			Name:        "Chelsea Home 2024",
			Price:       249900,
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Category:    models.CategoryClub,
			Tags:        []string{"new-arrivals"},
			Team:        "Chelsea FC",
			Season:      strPtr("2024-25"),
			Description: strPtr("Blues home jersey - Stamford Bridge heritage"),
		},
		{
			Name:          "Inter Milan Retro 1990",
			Price:         199900,
			OriginalPrice: intPtr(279900),
			ImageURL:      "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Category:      models.CategoryRetro,
			Tags:          []string{"retro", "top-deals"},
			Team:          "Inter Milan",
			Season:        strPtr("1989-90"),
			Description:   strPtr("Classic Nerazzurri jersey from legendary season"),
		},
		{
			Name:          "AC Milan Retro 2007",
			Price:         219900,
			OriginalPrice: intPtr(299900),
			ImageURL:      "https://images.unsplash.com/photo-1577223625816-7546f13df25d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
			Category:      models.CategoryRetro,
			Tags:          []string{"retro", "champions-league"},
			Team:          "AC Milan",
			Season:        strPtr("2006-07"),
			Description:   strPtr("Champions League winning jersey - Kaká masterpiece"),
		},
	}

	for _, j := range jerseys {
		s.CreateJersey(ctx, j)
	}

	banners := []models.CreateBannerRequest{
		{
			Title:    "UEFA Champions League Collection",
			Subtitle: strPtr("Official jerseys from Europe's elite clubs - Up to 40% off"),
			ImageURL: "https://images.unsplash.com/photo-1574629810360-7efbbe195018?ixlib=rb-4.0.3&auto=format&fit=crop&w=1920&h=600",
			CTAText:  strPtr("Shop Champions League"),
			CTALink:  strPtr("#featured"),
			Order:    intPtr(1),
		},
		{
			Title:    "World Cup Legends",
			Subtitle: strPtr("Messi's Argentina & iconic national team jerseys available now"),
			ImageURL: "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?ixlib=rb-4.0.3&auto=format&fit=crop&w=1920&h=600",
			CTAText:  strPtr("World Cup Collection"),
			CTALink:  strPtr("#top-deals"),
			Order:    intPtr(2),
		},
		{
			Title:    "Premier League 2024-25",
			Subtitle: strPtr("Latest season jerseys from Manchester United, Liverpool, Arsenal & more"),
			ImageURL: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=1920&h=600",
			CTAText:  strPtr("Premier League Jerseys"),
			CTALink:  strPtr("#new-arrivals"),
			Order:    intPtr(3),
		},
		{
			Title:    "Retro Football Classics",
			Subtitle: strPtr("Vintage jerseys from legendary seasons - Inter Milan 1990, AC Milan 2007"),
			ImageURL: "https://images.unsplash.com/photo-1577223625816-7546f13df25d?ixlib=rb-4.0.3&auto=format&fit=crop&w=1920&h=600",
			CTAText:  strPtr("Retro Collection"),
			CTALink:  strPtr("#retro"),
			Order:    intPtr(4),
		},
		{
			Title:    "La Liga Giants",
			Subtitle: strPtr("Real Madrid vs Barcelona - El Clasico rivalry jerseys"),
			ImageURL: "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?ixlib=rb-4.0.3&auto=format&fit=crop&w=1920&h=600",
			CTAText:  strPtr("El Clasico Collection"),
			CTALink:  strPtr("#featured"),
			Order:    intPtr(5),
		},
	}

	for _, b := range banners {
		s.CreateBanner(ctx, b)
	}
}
