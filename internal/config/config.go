package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Listen       string       `koanf:"listen"`
	Timezone     string       `koanf:"timezone"`
	Calendar     Calendar     `koanf:"calendar"`
	Carousel     Carousel     `koanf:"carousel"`
	Notification Notification `koanf:"notification"`
	Storage      Storage      `koanf:"storage"`
	Database     Database     `koanf:"db"`
}

type Calendar struct {
	// WeekStart is "sunday" or "monday".
	WeekStart          string      `koanf:"weekstart"`
	EventStartHour     int         `koanf:"eventstarthour"`
	EventDurationHours int         `koanf:"eventdurationhours"`
	Location           string      `koanf:"location"`
	ExportFileName     string      `koanf:"exportfilename"`
	ProductId          string      `koanf:"productid"`
	UpcomingLimit      int         `koanf:"upcominglimit"`
	PageURL            string      `koanf:"pageurl"`
	Events             []EventSeed `koanf:"events"`
}

type EventSeed struct {
	Date        string `koanf:"date"`
	Title       string `koanf:"title"`
	Description string `koanf:"description"`
}

type Carousel struct {
	Interval     time.Duration `koanf:"interval"`
	Testimonials []Testimonial `koanf:"testimonials"`
}

type Testimonial struct {
	Quote  string `koanf:"quote"`
	Author string `koanf:"author"`
}

type Notification struct {
	TTL time.Duration `koanf:"ttl"`
}

type Storage struct {
	// Driver is "bolt" or "postgres".
	Driver   string `koanf:"driver"`
	BoltPath string `koanf:"boltpath"`
	Key      string `koanf:"key"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

// Defaults returns the configuration used when neither file nor environment override a key.
func Defaults() Application {
	return Application{
		Listen:   ":8181",
		Timezone: "America/New_York",
		Calendar: Calendar{
			WeekStart:          "sunday",
			EventStartHour:     18,
			EventDurationHours: 3,
			Location:           "Kent State University Student Center",
			ExportFileName:     "KASA-Events.ics",
			ProductId:          "-//KASA//Events Calendar//EN",
			UpcomingLimit:      3,
			PageURL:            "https://kasa.example.org/#events",
			Events: []EventSeed{
				{Date: "2025-09-20", Title: "Welcome Back Mixer", Description: "Meet new and returning members."},
				{Date: "2025-10-11", Title: "Homecoming Day", Description: "Celebrate homecoming with the KASA family."},
				{Date: "2025-11-15", Title: "Culture Night", Description: "Food, music and performances from across the continent."},
			},
		},
		Carousel: Carousel{
			Interval: 5 * time.Second,
			Testimonials: []Testimonial{
				{
					Quote:  "Joining KASA was a transformative experience. Their expertise and personalized approach made connecting with my heritage stress-free and meaningful.",
					Author: "Amara Johnson",
				},
				{
					Quote:  "The community support and cultural events at KASA helped me find my place at Kent State. I've made lifelong friendships here.",
					Author: "Kwame Asante",
				},
				{
					Quote:  "KASA's academic support and mentorship programs were instrumental in my success. They truly care about each member's growth.",
					Author: "Fatima Al-Rashid",
				},
			},
		},
		Notification: Notification{
			TTL: 4 * time.Second,
		},
		Storage: Storage{
			Driver:   "bolt",
			BoltPath: "./data/kasa.db",
			Key:      "kasaSubscription",
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "kasa",
			Pass:   "",
			Name:   "kasa",
			Schema: "kasa",
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "KASA_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "KASA_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}
	app.normalize()

	return app, nil
}

func (a *Application) normalize() {
	switch strings.ToLower(a.Calendar.WeekStart) {
	case "monday":
		a.Calendar.WeekStart = "monday"
	default:
		a.Calendar.WeekStart = "sunday"
	}
	if a.Calendar.EventStartHour < 0 || a.Calendar.EventStartHour > 23 {
		a.Calendar.EventStartHour = 18
	}
	if a.Calendar.EventDurationHours <= 0 {
		a.Calendar.EventDurationHours = 3
	}
	if a.Calendar.UpcomingLimit <= 0 {
		a.Calendar.UpcomingLimit = 3
	}
	if a.Carousel.Interval < time.Second {
		a.Carousel.Interval = 5 * time.Second
	}
	if a.Notification.TTL <= 0 {
		a.Notification.TTL = 4 * time.Second
	}
	if a.Storage.Key == "" {
		a.Storage.Key = "kasaSubscription"
	}
}

// WeekStartDay maps the configured week start onto time.Weekday.
func (c Calendar) WeekStartDay() time.Weekday {
	if c.WeekStart == "monday" {
		return time.Monday
	}
	return time.Sunday
}
