package seed

import "github.com/franciscosanchezn/gin-rappers-api/internal/models"

// Block is one seeded user together with the rappers created for it
type Block struct {
	Email                string
	Password             string
	PasswordConfirmation string
	Rappers              []models.Rapper
}

// Records returns the fixed seed data. Each call returns a fresh copy, so
// callers may persist the rappers without mutating the next run's input.
func Records() []Block {
	return []Block{
		{
			Email:                "test1@example.com",
			Password:             "password",
			PasswordConfirmation: "password",
			Rappers: []models.Rapper{
				{
					Name:   "Charla Mae",
					Genre:  "Heavy Metal",
					Songs:  "In Da Code, Code Playing Tricks on Me",
					Awards: 3,
					Price:  "$70/hr",
					Rating: 4.4,
					Image:  "https://freesvg.org/img/cyberscooty-hip_hop_kid_2.png",
				},
				{
					Name:   "Nicod",
					Genre:  "Classical",
					Songs:  "Code Takes Two, It Was a Code Day",
					Awards: 3,
					Price:  "$68/hr",
					Rating: 4.4,
					Image:  "https://freesvg.org/img/cyberscooty-hip_hop_kid_1.png",
				},
			},
		},
		{
			Email:                "test2@example.com",
			Password:             "password",
			PasswordConfirmation: "password",
			Rappers: []models.Rapper{
				{
					Name:   "DOAX",
					Genre:  "Gangsta Rap",
					Songs:  "Can Code This, Nothing But a Code Thang",
					Awards: 5,
					Price:  "$80/hr",
					Rating: 4.9,
					Image:  "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTLY73XNvTkFW9UpjV5sVczHTvYJpcZZOEyaQ&usqp=CAU",
				},
			},
		},
	}
}
