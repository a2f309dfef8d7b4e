package handlers

import "tum-backend/internal/models"

var NotificationResource = Resource{
	Collection:   models.Notifications,
	Path:         "/notifections",
	Created:      "Notification created successfully",
	Listed:       "Notifications fetched successfully",
	Fetched:      "Notification fetched successfully",
	Deleted:      "Notification deleted successfully",
	NotFound:     "Notification not found",
	ListKey:      "notifications",
	ItemKey:      "notification",
	DeleteResult: true,
}

var CarouselResource = Resource{
	Collection: models.CarouselData,
	Path:       "/carouseldata",
	Created:    "Carousel data created successfully",
	Listed:     "Carousel data retrieved successfully",
	Fetched:    "Carousel data retrieved successfully",
	Updated:    "Carousel data updated successfully",
	NotFound:   "Carousel data not found",
	Empty:      "No carousel data found",
	ListKey:    "data",
	ItemKey:    "data",
}

var AboutTextResource = Resource{
	Collection: models.AboutText,
	Path:       "/about_text",
	Created:    "about_text created successfully",
	Listed:     "About text retrieved successfully",
	Fetched:    "About text retrieved successfully",
	Updated:    "About text updated successfully",
	Deleted:    "About text deleted successfully",
	NotFound:   "About text not found",
	Empty:      "No about text found",
	ListKey:    "data",
	ItemKey:    "data",
	UpdatedKey: "data",
	Flagged:    opList | opGet | opUpdate | opDelete,
}

var BasicInfoResource = Resource{
	Collection:      models.BasicInfo,
	Path:            "/basic_info",
	Created:         "basic_info created successfully",
	Listed:          "basic_info retrieved successfully",
	Fetched:         "basic_info retrieved successfully",
	Updated:         "basic_info updated successfully",
	NotFound:        "basic_info not found",
	Empty:           "No basic_info found",
	ListKey:         "data",
	ItemKey:         "data",
	UpdatedKey:      "updatedFields",
	Flagged:         opUpdate,
	Required:        []string{"name", "description"},
	RequiredMessage: "Name and description are required",
}
