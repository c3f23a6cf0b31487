package catalog

import "vincent-gallery/pkg/models"

var defaultPaintings = []models.Painting{
	{
		ID:          1,
		Title:       "Sunflowers (1888)",
		Description: "One of Van Gogh's most famous series of paintings depicting sunflowers in a vase.",
		Year:        1888,
		Medium:      "Oil on canvas",
		Dimensions:  "92.1 × 73 cm",
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/thumb/4/46/Vincent_Willem_van_Gogh_127.jpg/250px-Vincent_Willem_van_Gogh_127.jpg",
	},
	{
		ID:          2,
		Title:       "The Bedroom (1888)",
		Description: "A depiction of Van Gogh's bedroom at the Yellow House in Arles.",
		Year:        1888,
		Medium:      "Oil on canvas",
		Dimensions:  "72 × 90 cm",
		ImageURL:    "https://media.architecturaldigest.com/photos/56be5673202b83b31f121333/1:1/w_842,h_842,c_limit/airbnb-offers-chance-sleep-van-goghs-bedroom-01.png",
	},
	{
		ID:          3,
		Title:       "Irises (1889)",
		Description: "Painted while Van Gogh was at the asylum in Saint-Rémy-de-Provence.",
		Year:        1889,
		Medium:      "Oil on canvas",
		Dimensions:  "71 × 93 cm",
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/thumb/3/3e/Irises-Vincent_van_Gogh.jpg/1280px-Irises-Vincent_van_Gogh.jpg",
	},
	{
		ID:          4,
		Title:       "Café Terrace at Night (1888)",
		Description: "Depicts a café terrace on the Place du Forum in Arles, France.",
		Year:        1888,
		Medium:      "Oil on canvas",
		Dimensions:  "80.7 × 65.3 cm",
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/b/b0/Vincent_van_Gogh_%281853-1890%29_Caféterras_bij_nacht_%28place_du_Forum%29_Kröller-Müller_Museum_Otterlo_23-8-2016_13-35-40.JPG",
	},
	{
		ID:          5,
		Title:       "The Starry Night (1889)",
		Description: "One of Van Gogh's most recognized paintings, depicting the view from his asylum window.",
		Year:        1889,
		Medium:      "Oil on canvas",
		Dimensions:  "73.7 × 92.1 cm",
		ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/thumb/e/ea/Van_Gogh_-_Starry_Night_-_Google_Art_Project.jpg/1280px-Van_Gogh_-_Starry_Night_-_Google_Art_Project.jpg",
	},
}

var defaultBiography = models.Biography{
	Name:        "Vincent van Gogh",
	Birth:       "March 30, 1853",
	Death:       "July 29, 1890",
	Nationality: "Dutch",
	Movement:    "Post-Impressionism",
	KnownFor:    "Sunflowers, The Starry Night, Irises, Self-Portraits",
	TotalWorks:  "Approximately 2,100",
	Quote:       "I am seeking, I am striving, I am in it with all my heart.",
}
