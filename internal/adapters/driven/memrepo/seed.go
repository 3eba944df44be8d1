package memrepo

import (
	"strconv"
	"time"

	"nearbysos/internal/core/domain"
)

const (
	ambulanceImage = "https://images.unsplash.com/photo-1587745416684-47953f16f02f?w=400&h=400&fit=crop"

	doctorImageA = "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400&h=400&fit=crop&face"
	doctorImageB = "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400&h=400&fit=crop&face"
	doctorImageC = "https://images.unsplash.com/photo-1594824804732-ca8db7d52b35?w=400&h=400&fit=crop&face"
	doctorImageD = "https://images.unsplash.com/photo-1622253692010-333f2da6031d?w=400&h=400&fit=crop&face"
)

func seededAt(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

func seedListing(id int, title, description, location, image string) domain.Listing {
	at := seededAt(id)

	return domain.Listing{
		ID:          strconv.Itoa(id),
		Title:       title,
		Description: description,
		Location:    location,
		Image:       image,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}

// SeedAmbulances returns the fixed ambulance sample data loaded at every
// process start.
func SeedAmbulances() []domain.Listing {
	return []domain.Listing{
		seedListing(1, "Advanced Life Support Unit 01",
			"Fully equipped ALS ambulance with cardiac monitor, ventilator, and advanced medications.",
			"Station 1 - Downtown Fire Department", ambulanceImage),
		seedListing(2, "Basic Life Support Unit 02",
			"BLS ambulance for non-critical patient transport and basic emergency care.",
			"Station 2 - North Side Medical Center", ambulanceImage),
		seedListing(3, "Critical Care Transport 03",
			"Specialized ICU-level ambulance for critical patient transfers between hospitals.",
			"Station 3 - Metro General Hospital", ambulanceImage),
		seedListing(4, "Pediatric Ambulance 04",
			"Specialized ambulance equipped for pediatric emergencies with child-sized equipment.",
			"Station 4 - Children's Hospital", ambulanceImage),
		seedListing(5, "Cardiac Response Unit 05",
			"Specialized cardiac ambulance with 12-lead EKG, balloon pump, and cardiac medications.",
			"Station 5 - Heart Institute", ambulanceImage),
		seedListing(6, "Trauma Response Unit 06",
			"Heavy rescue ambulance equipped for major trauma and multi-casualty incidents.",
			"Station 6 - Trauma Center", ambulanceImage),
		seedListing(7, "Air Medical Unit 07",
			"Helicopter ambulance for rapid transport and access to remote locations.",
			"Station 7 - Regional Airport", ambulanceImage),
		seedListing(8, "Mobile Stroke Unit 08",
			"Specialized ambulance with CT scanner for rapid stroke diagnosis and treatment.",
			"Station 8 - Neurological Institute", ambulanceImage),
		seedListing(9, "Neonatal Transport 09",
			"Specialized unit for transporting critically ill newborns and premature infants.",
			"Station 9 - Maternity Hospital", ambulanceImage),
		seedListing(10, "Hazmat Response Unit 10",
			"Specialized ambulance for chemical, biological, and radiation emergency response.",
			"Station 10 - Emergency Operations Center", ambulanceImage),
		seedListing(11, "Bariatric Ambulance 11",
			"Heavy-duty ambulance equipped for transporting patients over 400 pounds safely.",
			"Station 11 - Specialized Transport", ambulanceImage),
		seedListing(12, "Mental Health Crisis Unit 12",
			"Specialized ambulance with trained psychiatric technicians for mental health emergencies.",
			"Station 12 - Mental Health Center", ambulanceImage),
	}
}

// SeedDoctors returns the fixed doctor sample data loaded at every process
// start.
func SeedDoctors() []domain.Listing {
	return []domain.Listing{
		seedListing(1, "Dr. Sarah John",
			"Emergency Medicine Specialist with 15 years of experience. Available 24/7 for critical care.",
			"Central Hospital, Downtown", doctorImageA),
		seedListing(2, "Dr. Michael Chen",
			"Trauma Surgeon specializing in emergency procedures and critical care.",
			"Metro General Hospital", doctorImageB),
		seedListing(3, "Dr. Emily Rodriguez",
			"Pediatric Emergency Specialist focused on children's emergency care.",
			"Children's Medical Center", doctorImageC),
		seedListing(4, "Dr. James Wilson",
			"Cardiologist specializing in heart emergencies and cardiac arrest response.",
			"Heart Institute, North Side", doctorImageD),
		seedListing(5, "Dr. Lisa Thompson",
			"Neurologist specializing in stroke and brain injury emergency care.",
			"Neuro Center, East Wing", doctorImageA),
		seedListing(6, "Dr. Robert Kim",
			"Orthopedic Surgeon for emergency bone and joint injuries.",
			"Orthopedic Emergency Unit", doctorImageB),
		seedListing(7, "Dr. Amanda Davis",
			"Emergency Psychiatrist for mental health crisis intervention.",
			"Mental Health Emergency Center", doctorImageC),
		seedListing(8, "Dr. David Brown",
			"Anesthesiologist available for emergency surgeries and pain management.",
			"Surgical Emergency Unit", doctorImageD),
		seedListing(9, "Dr. Jennifer Lee",
			"Emergency Radiologist for urgent imaging and diagnostic services.",
			"Emergency Imaging Center", doctorImageA),
		seedListing(10, "Dr. Rachel Green",
			"Emergency Pharmacist for critical medication management and poison control.",
			"Emergency Pharmacy Unit", doctorImageC),
		seedListing(11, "Dr. Kevin White",
			"Emergency ENT Specialist for airway emergencies and respiratory issues.",
			"Respiratory Emergency Unit", doctorImageD),
		seedListing(12, "Dr. Susan Black",
			"Emergency Infectious Disease Specialist for outbreak response and critical infections.",
			"Infectious Disease Emergency Unit", doctorImageA),
	}
}
