package service

import (
	"huddle/internal/domains/room/model"
	gModel "huddle/shared/model"
	"huddle/shared/timezone"

	"github.com/google/uuid"
)

// seedRooms returns the fixed room catalog. Names are the natural keys the
// upsert conflicts on.
func seedRooms(user string) []model.Room {
	catalog := []model.Room{
		{
			Name:          "Everest",
			Capacity:      12,
			Description:   "Large conference room",
			Image:         "https://images.unsplash.com/photo-1431440869543-efaf3388c585?auto=format&fit=crop&w=1000&q=80",
			ContactPerson: "Sarah Johnson",
		},
		{
			Name:          "Kilimanjaro",
			Capacity:      8,
			Description:   "Medium meeting room",
			Image:         "https://images.unsplash.com/photo-1497366216548-37526070297c?auto=format&fit=crop&w=1000&q=80",
			ContactPerson: "Michael Chen",
		},
		{
			Name:          "Alps",
			Capacity:      6,
			Description:   "Cozy meeting space",
			Image:         "https://images.unsplash.com/photo-1497366811353-6870744d04b2?auto=format&fit=crop&w=1000&q=80",
			ContactPerson: "Emma Davis",
		},
		{
			Name:          "Andes",
			Capacity:      10,
			Description:   "Presentation room",
			Image:         "https://images.unsplash.com/photo-1497366754035-f200968a6e72?auto=format&fit=crop&w=1000&q=80",
			ContactPerson: "Alex Martinez",
		},
		{
			Name:          "Rockies",
			Capacity:      4,
			Description:   "Small meeting room",
			Image:         "https://images.unsplash.com/photo-1497366412874-3415097a27e7?auto=format&fit=crop&w=1000&q=80",
			ContactPerson: "Lisa Wong",
		},
		{
			Name:          "Himalayas",
			Capacity:      15,
			Description:   "Board room",
			Image:         "https://images.unsplash.com/photo-1497366858526-0766cadbe8fa?auto=format&fit=crop&w=1000&q=80",
			ContactPerson: "David Smith",
		},
	}

	now := timezone.Now()
	for i := range catalog {
		catalog[i].ID = uuid.NewString()
		catalog[i].Metadata = gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		}
	}

	return catalog
}
