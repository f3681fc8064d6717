package site

import "github.com/MKhiriev/dental-site/models"

func unsplash(id string) string {
	return "https://images.unsplash.com/" + id + "?w=600&h=400&fit=crop"
}

// Default returns the built-in clinic configuration. Every call builds a
// fresh value, so callers may modify the result freely.
func Default() models.ClinicConfig {
	return models.ClinicConfig{
		Clinic: models.Clinic{
			Name:    "UrbanSmile Dental",
			Tagline: "Premium Dental Care",
			Logo: models.Logo{
				Full:    "/Dental-Logo-Design.jpg",
				Initial: "U",
			},
		},
		Contact: models.Contact{
			Phone: "+1 (234) 567-890",
			Email: "hello@smilestudio.com",
			Address: models.Address{
				Street:  "123 Dental Ave",
				City:    "New York",
				State:   "NY",
				Zip:     "10001",
				Country: "USA",
			},
			Hours: models.Hours{
				Weekdays: "Mon-Fri: 9AM - 7PM",
				Saturday: "Saturday: 9AM - 5PM",
				Sunday:   "Sunday: Closed",
			},
		},
		Social: models.Social{
			Facebook:  "#",
			Instagram: "#",
			Twitter:   "#",
			Youtube:   "#",
		},
		Services: []models.Service{
			{
				Icon:        "Sparkles",
				Title:       "Teeth Whitening",
				Description: "Professional whitening treatments for a brighter, more confident smile in just one visit.",
				Price:       "From $299",
				Popular:     true,
			},
			{
				Icon:        "Smile",
				Title:       "Dental Veneers",
				Description: "Custom porcelain veneers to transform your smile with natural-looking, permanent results.",
				Price:       "From $899",
			},
			{
				Icon:        "CircleDot",
				Title:       "Invisalign",
				Description: "Clear aligner therapy for straighter teeth without traditional metal braces.",
				Price:       "From $3,500",
				Popular:     true,
			},
			{
				Icon:        "Syringe",
				Title:       "Dental Implants",
				Description: "Permanent tooth replacement solutions that look, feel, and function like natural teeth.",
				Price:       "From $1,999",
			},
			{
				Icon:        "ScanLine",
				Title:       "Digital Smile Design",
				Description: "Preview your new smile before treatment with our advanced 3D imaging technology.",
				Price:       "Complimentary",
			},
			{
				Icon:        "Stethoscope",
				Title:       "Comprehensive Exams",
				Description: "Thorough dental examinations including X-rays, oral cancer screening, and treatment planning.",
				Price:       "From $149",
			},
		},
		Doctors: []models.Doctor{
			{
				Image:       "/assets/doctor-1.jpg",
				Name:        "Dr. Michael Chen",
				Role:        "Cosmetic Dentistry Specialist",
				Credentials: "DDS, FAGD • 15+ Years Experience",
			},
			{
				Image:       "/assets/doctor-2.jpg",
				Name:        "Dr. Sarah Williams",
				Role:        "Orthodontics & Invisalign Expert",
				Credentials: "DMD, MS • Board Certified",
			},
		},
		Images: models.Images{
			Hero:           "/assets/hero-smile.jpg",
			ClinicInterior: "/assets/clinic-interior.jpg",
		},
		Content: models.Content{
			Hero: models.HeroContent{
				Title:    "Your Perfect Smile Starts Here",
				Subtitle: "Experience world-class dental care with cutting-edge technology and a compassionate team dedicated to transforming your smile and confidence.",
				Badge:    "Rated #1 Dental Clinic in the Region",
			},
			About: models.AboutContent{
				Title:       "Where Expertise Meets Compassion",
				Description: "At UrbanSmile Dental, we believe everyone deserves a healthy, beautiful smile. Our team of internationally trained specialists combines cutting-edge technology with personalized care to deliver exceptional results.",
				Features: []string{
					"State-of-the-art equipment & technology",
					"Internationally trained specialists",
					"Strict sterilization protocols",
					"Comfortable, spa-like environment",
					"Flexible payment plans available",
					"Multilingual staff for international patients",
				},
			},
			Stats: models.StatsContent{
				Patients:     "15,000+",
				Experience:   "25+",
				Satisfaction: "100%",
			},
		},
		Testimonials: []models.Testimonial{
			{
				ID:        1,
				Name:      "Sarah Johnson",
				Location:  "New York, USA",
				Rating:    5,
				Text:      "After years of hiding my smile, Dr. Chen gave me the confidence I never knew I could have. The entire team made me feel so comfortable, and the results exceeded my expectations!",
				Treatment: "Porcelain Veneers",
				Avatar:    "SJ",
			},
			{
				ID:        2,
				Name:      "James Mitchell",
				Location:  "London, UK",
				Rating:    5,
				Text:      "I traveled from London specifically for their expertise in dental implants. Worth every mile! The technology they use is incredible, and the aftercare has been exceptional.",
				Treatment: "Dental Implants",
				Avatar:    "JM",
			},
			{
				ID:        3,
				Name:      "Maria Garcia",
				Location:  "Dubai, UAE",
				Rating:    5,
				Text:      "The invisible aligners changed my life. I could straighten my teeth without anyone noticing I was in treatment. The monthly check-ins were so convenient!",
				Treatment: "Invisalign",
				Avatar:    "MG",
			},
			{
				ID:        4,
				Name:      "Ahmed Hassan",
				Location:  "Toronto, Canada",
				Rating:    5,
				Text:      "As someone with dental anxiety, I was nervous about getting implants. The team here was incredibly patient and made the entire process stress-free. Highly recommend!",
				Treatment: "Full Smile Makeover",
				Avatar:    "AH",
			},
		},
		BeforeAfter: []models.BeforeAfterCase{
			{
				ID:          1,
				Treatment:   "Teeth Whitening",
				Duration:    "1 Session",
				BeforeImage: unsplash("photo-1606811841689-23dfddce3e95"),
				AfterImage:  unsplash("photo-1581585828929-ebc61a190102"),
				Description: "Professional whitening treatment achieving 8 shades brighter in just one visit.",
			},
			{
				ID:          2,
				Treatment:   "Porcelain Veneers",
				Duration:    "2 Weeks",
				BeforeImage: unsplash("photo-1598256989800-fe5f95da9787"),
				AfterImage:  unsplash("photo-1609840114035-3c981b782dfe"),
				Description: "Complete smile makeover with custom porcelain veneers for a natural, beautiful result.",
			},
			{
				ID:          3,
				Treatment:   "Invisalign",
				Duration:    "6 Months",
				BeforeImage: unsplash("photo-1588776814546-1ffcf47267a5"),
				AfterImage:  unsplash("photo-1629909613654-28e377c37b09"),
				Description: "Invisible aligners straightened teeth discreetly, creating a perfectly aligned smile.",
			},
			{
				ID:          4,
				Treatment:   "Dental Implants",
				Duration:    "3 Months",
				BeforeImage: unsplash("photo-1607613009820-a29f7bb81c04"),
				AfterImage:  unsplash("photo-1606811841689-23dfddce3e95"),
				Description: "Single tooth implant restored full function and aesthetics with a natural-looking crown.",
			},
		},
	}
}
