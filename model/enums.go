package model

import (
	"github.com/andaru/scanogram/correspondence"
)

// Gender is the expected body shape of the scanned person
type Gender int

const (
	// GenderNeutral is used when the gender was not specified,
	// e.g. for fully automatic scans
	GenderNeutral Gender = iota
	GenderMale
	GenderFemale
)

var genders = correspondence.New("scanogram.Gender", []correspondence.Entry[Gender]{
	{Value: GenderNeutral, Name: "neutral", Label: "neutral gender"},
	{Value: GenderMale, Name: "male", Label: "male"},
	{Value: GenderFemale, Name: "female", Label: "female"},
}...)

func ParseGender(s string) (Gender, error)   { return genders.FromString(s) }
func Genders() []Gender                      { return genders.Values() }
func (g Gender) String() string              { return genders.ToString(g) }
func (g Gender) UserFriendly() string        { return genders.ToUserFriendly(g) }
func (g Gender) MarshalText() ([]byte, error) { return []byte(g.String()), nil }
func (g *Gender) UnmarshalText(b []byte) error {
	v, err := genders.FromString(string(b))
	if err == nil {
		*g = v
	}
	return err
}

// AgeGroup describes the scanned person's age bracket
type AgeGroup int

const (
	// AgeGroupNA means the field was left empty or the person did not
	// share it
	AgeGroupNA AgeGroup = iota
	AgeGroupChild
	AgeGroupAdult
	AgeGroupElderly
)

var ageGroups = correspondence.New("scanogram.AgeGroup", []correspondence.Entry[AgeGroup]{
	{Value: AgeGroupNA, Name: "not_available", Label: "unknown age group"},
	{Value: AgeGroupChild, Name: "child", Label: "a child"},
	{Value: AgeGroupAdult, Name: "adult", Label: "adult person"},
	{Value: AgeGroupElderly, Name: "elderly", Label: "elderly person"},
}...)

func ParseAgeGroup(s string) (AgeGroup, error)  { return ageGroups.FromString(s) }
func AgeGroups() []AgeGroup                     { return ageGroups.Values() }
func (a AgeGroup) String() string               { return ageGroups.ToString(a) }
func (a AgeGroup) UserFriendly() string         { return ageGroups.ToUserFriendly(a) }
func (a AgeGroup) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (a *AgeGroup) UnmarshalText(b []byte) error {
	v, err := ageGroups.FromString(string(b))
	if err == nil {
		*a = v
	}
	return err
}

// ScannerType is the scanner model which recorded a scanogram
type ScannerType int

const (
	// ScannerPortalMX is a rotating platform with several RGBD sensors around
	ScannerPortalMX ScannerType = iota
	// ScannerPortalRX is a rotating column of RGBD sensors around a static person
	ScannerPortalRX
	// ScannerFreeFusion is a single static sensor, the person turns around
	ScannerFreeFusion
)

var scannerTypes = correspondence.New("scanogram.ScannerType", []correspondence.Entry[ScannerType]{
	{Value: ScannerPortalMX, Name: "portal_mx", Label: "Portal MX"},
	{Value: ScannerPortalRX, Name: "portal_rx", Label: "Portal RX"},
	{Value: ScannerFreeFusion, Name: "free_fusion", Label: "Free Fusion"},
}...)

func ParseScannerType(s string) (ScannerType, error) { return scannerTypes.FromString(s) }
func ScannerTypes() []ScannerType                    { return scannerTypes.Values() }
func (s ScannerType) String() string                 { return scannerTypes.ToString(s) }
func (s ScannerType) UserFriendly() string           { return scannerTypes.ToUserFriendly(s) }
func (s ScannerType) MarshalText() ([]byte, error)   { return []byte(s.String()), nil }
func (s *ScannerType) UnmarshalText(b []byte) error {
	v, err := scannerTypes.FromString(string(b))
	if err == nil {
		*s = v
	}
	return err
}

// SensorType is the sensor that recorded a stream
type SensorType int

const (
	// SensorSynthetic streams were rendered in software
	SensorSynthetic SensorType = iota
	SensorAzureKinect
)

// the "syntethic" wire name is kept as existing project files spell it
var sensorTypes = correspondence.New("scanogram.SensorType", []correspondence.Entry[SensorType]{
	{Value: SensorSynthetic, Name: "syntethic", Label: "software render"},
	{Value: SensorAzureKinect, Name: "azure_kinect", Label: "Azure Kinect DK"},
}...)

func ParseSensorType(s string) (SensorType, error) { return sensorTypes.FromString(s) }
func SensorTypes() []SensorType                    { return sensorTypes.Values() }
func (s SensorType) String() string                { return sensorTypes.ToString(s) }
func (s SensorType) UserFriendly() string          { return sensorTypes.ToUserFriendly(s) }
func (s SensorType) MarshalText() ([]byte, error)  { return []byte(s.String()), nil }
func (s *SensorType) UnmarshalText(b []byte) error {
	v, err := sensorTypes.FromString(string(b))
	if err == nil {
		*s = v
	}
	return err
}

// Hairstyle classifies the person's hair
type Hairstyle int

const (
	HairstyleNA Hairstyle = iota
	// HairstyleShaved hair is part of the rigid head surface
	HairstyleShaved
	// HairstyleShortHaircut hair moves and is a non-rigid object
	HairstyleShortHaircut
	HairstyleLongHaircut
	// HairstyleHat means the hair was hidden by a hat
	HairstyleHat
)

var hairstyles = correspondence.New("scanogram.Hairstyle", []correspondence.Entry[Hairstyle]{
	{Value: HairstyleNA, Name: "not_available", Label: "unknown hairstyle"},
	{Value: HairstyleShaved, Name: "shaved", Label: "shaved"},
	{Value: HairstyleShortHaircut, Name: "short_haircut", Label: "short haircut"},
	{Value: HairstyleLongHaircut, Name: "long_haircut", Label: "long haircut"},
	{Value: HairstyleHat, Name: "hat", Label: "with hat"},
}...)

func ParseHairstyle(s string) (Hairstyle, error) { return hairstyles.FromString(s) }
func Hairstyles() []Hairstyle                    { return hairstyles.Values() }
func (h Hairstyle) String() string               { return hairstyles.ToString(h) }
func (h Hairstyle) UserFriendly() string         { return hairstyles.ToUserFriendly(h) }
func (h Hairstyle) MarshalText() ([]byte, error) { return []byte(h.String()), nil }
func (h *Hairstyle) UnmarshalText(b []byte) error {
	v, err := hairstyles.FromString(string(b))
	if err == nil {
		*h = v
	}
	return err
}

// Clothing describes how much the clothes hide the body shape
type Clothing int

const (
	ClothingNA Clothing = iota
	ClothingUnderwear
	ClothingTight
	ClothingCasual
	ClothingOversize
	ClothingOuterwear
)

var clothings = correspondence.New("scanogram.Clothing", []correspondence.Entry[Clothing]{
	{Value: ClothingNA, Name: "not_available", Label: "unknown clothes"},
	{Value: ClothingUnderwear, Name: "underwear", Label: "almost naked"},
	{Value: ClothingTight, Name: "tight", Label: "tight clothing"},
	{Value: ClothingCasual, Name: "casual", Label: "casual clothing"},
	{Value: ClothingOversize, Name: "oversize", Label: "oversize clothing"},
	{Value: ClothingOuterwear, Name: "outerwear", Label: "outerwear"},
}...)

func ParseClothing(s string) (Clothing, error)  { return clothings.FromString(s) }
func Clothings() []Clothing                     { return clothings.Values() }
func (c Clothing) String() string               { return clothings.ToString(c) }
func (c Clothing) UserFriendly() string         { return clothings.ToUserFriendly(c) }
func (c Clothing) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (c *Clothing) UnmarshalText(b []byte) error {
	v, err := clothings.FromString(string(b))
	if err == nil {
		*c = v
	}
	return err
}

// Shoes classifies footwear by its effect on the measured height
type Shoes int

const (
	ShoesNA Shoes = iota
	ShoesBarefoot
	ShoesFlatBoots
	ShoesHeeledBoots
)

var shoes = correspondence.New("scanogram.Shoes", []correspondence.Entry[Shoes]{
	{Value: ShoesNA, Name: "not_available", Label: "unknown shoes"},
	{Value: ShoesBarefoot, Name: "barefoot", Label: "barefoot or in socks"},
	{Value: ShoesFlatBoots, Name: "flat_boots", Label: "flat boots"},
	{Value: ShoesHeeledBoots, Name: "heeled_boots", Label: "boots with heels"},
}...)

func ParseShoes(s string) (Shoes, error)     { return shoes.FromString(s) }
func AllShoes() []Shoes                      { return shoes.Values() }
func (s Shoes) String() string               { return shoes.ToString(s) }
func (s Shoes) UserFriendly() string         { return shoes.ToUserFriendly(s) }
func (s Shoes) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *Shoes) UnmarshalText(b []byte) error {
	v, err := shoes.FromString(string(b))
	if err == nil {
		*s = v
	}
	return err
}

// Lighting is the lighting condition of the recording
type Lighting int

const (
	LightingNA Lighting = iota
	LightingDim
	LightingNormal
	// LightingBright color frames are overexposed
	LightingBright
)

var lightings = correspondence.New("scanogram.Lighting", []correspondence.Entry[Lighting]{
	{Value: LightingNA, Name: "not_available", Label: "unknown lighting"},
	{Value: LightingDim, Name: "dim", Label: "dim lighting"},
	{Value: LightingNormal, Name: "normal", Label: "normal lighting"},
	{Value: LightingBright, Name: "bright", Label: "bright lighting"},
}...)

func ParseLighting(s string) (Lighting, error)  { return lightings.FromString(s) }
func Lightings() []Lighting                     { return lightings.Values() }
func (l Lighting) String() string               { return lightings.ToString(l) }
func (l Lighting) UserFriendly() string         { return lightings.ToUserFriendly(l) }
func (l Lighting) MarshalText() ([]byte, error) { return []byte(l.String()), nil }
func (l *Lighting) UnmarshalText(b []byte) error {
	v, err := lightings.FromString(string(b))
	if err == nil {
		*l = v
	}
	return err
}

// Placement is where the scanogram was recorded
type Placement int

const (
	PlacementNA Placement = iota
	PlacementIndoor
	PlacementOutdoor
)

var placements = correspondence.New("scanogram.Placement", []correspondence.Entry[Placement]{
	{Value: PlacementNA, Name: "not_available", Label: "unknown place"},
	{Value: PlacementIndoor, Name: "indoor", Label: "indoor"},
	{Value: PlacementOutdoor, Name: "outdoor", Label: "outdoor"},
}...)

func ParsePlacement(s string) (Placement, error) { return placements.FromString(s) }
func Placements() []Placement                    { return placements.Values() }
func (p Placement) String() string               { return placements.ToString(p) }
func (p Placement) UserFriendly() string         { return placements.ToUserFriendly(p) }
func (p Placement) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (p *Placement) UnmarshalText(b []byte) error {
	v, err := placements.FromString(string(b))
	if err == nil {
		*p = v
	}
	return err
}

// Garment tags a piece of clothing or an accessory the person wore
type Garment int

const (
	GarmentJeans Garment = iota
	GarmentTrousers
	GarmentSkirt
	GarmentShorts
	GarmentSportsTrouser

	GarmentShirt
	GarmentTShirt
	GarmentLongSleeve
	GarmentBlazer
	GarmentPullover
	GarmentHoodie
	GarmentPoloNeck
	GarmentTankTop
	GarmentVest
	GarmentDress

	GarmentCap
	GarmentHat
	GarmentCowboyHat
	GarmentHeadScarf
	GarmentHeadset

	GarmentJacket
	GarmentDownJacket
	GarmentCoat
	GarmentCloak

	GarmentBoots
	GarmentSandals
	GarmentSneakers
	GarmentHighBoots
	GarmentHeeledShoes

	GarmentGlasses
	GarmentSunGlasses

	GarmentScarf
	GarmentGloves
	GarmentTie
)

var garments = correspondence.New("scanogram.Garment", []correspondence.Entry[Garment]{
	{Value: GarmentJeans, Name: "jeans", Label: "jeans"},
	{Value: GarmentTrousers, Name: "trousers", Label: "trousers"},
	{Value: GarmentSkirt, Name: "skirt", Label: "skirt"},
	{Value: GarmentShorts, Name: "shorts", Label: "shorts"},
	{Value: GarmentSportsTrouser, Name: "sports_trouser", Label: "sports trouser"},

	{Value: GarmentShirt, Name: "shirt", Label: "shirt"},
	{Value: GarmentTShirt, Name: "t_shirt", Label: "t-shirt"},
	{Value: GarmentLongSleeve, Name: "long_sleeve", Label: "long sleeve"},
	{Value: GarmentBlazer, Name: "blazer", Label: "blazer"},
	{Value: GarmentPullover, Name: "pullover", Label: "pullover"},
	{Value: GarmentHoodie, Name: "hoodie", Label: "hoodie"},
	{Value: GarmentPoloNeck, Name: "polo_neck", Label: "polo neck"},
	{Value: GarmentTankTop, Name: "tank_top", Label: "tank top"},
	{Value: GarmentVest, Name: "vest", Label: "vest"},
	{Value: GarmentDress, Name: "dress", Label: "dress"},

	{Value: GarmentCap, Name: "cap", Label: "cap"},
	{Value: GarmentHat, Name: "hat", Label: "hat"},
	{Value: GarmentCowboyHat, Name: "cowboy_hat", Label: "cowboy hat"},
	{Value: GarmentHeadScarf, Name: "head_scarf", Label: "head scarf"},
	{Value: GarmentHeadset, Name: "headset", Label: "headset"},

	{Value: GarmentJacket, Name: "jacket", Label: "jacket"},
	{Value: GarmentDownJacket, Name: "down_jacket", Label: "down jacket"},
	{Value: GarmentCoat, Name: "coat", Label: "coat"},
	{Value: GarmentCloak, Name: "cloak", Label: "cloak"},

	{Value: GarmentBoots, Name: "boots", Label: "boots"},
	{Value: GarmentSandals, Name: "sandals", Label: "sandals"},
	{Value: GarmentSneakers, Name: "sneakers", Label: "sneakers"},
	{Value: GarmentHighBoots, Name: "high_boots", Label: "high boots"},
	{Value: GarmentHeeledShoes, Name: "heeled_shoes", Label: "heeled shoes"},

	{Value: GarmentGlasses, Name: "glasses", Label: "glasses"},
	{Value: GarmentSunGlasses, Name: "sun_glasses", Label: "sun glasses"},

	{Value: GarmentScarf, Name: "scarf", Label: "scarf"},
	{Value: GarmentGloves, Name: "gloves", Label: "gloves"},
	{Value: GarmentTie, Name: "tie", Label: "tie"},
}...)

func ParseGarment(s string) (Garment, error)   { return garments.FromString(s) }
func Garments() []Garment                      { return garments.Values() }
func (g Garment) String() string               { return garments.ToString(g) }
func (g Garment) UserFriendly() string         { return garments.ToUserFriendly(g) }
func (g Garment) MarshalText() ([]byte, error) { return []byte(g.String()), nil }
func (g *Garment) UnmarshalText(b []byte) error {
	v, err := garments.FromString(string(b))
	if err == nil {
		*g = v
	}
	return err
}

// ScanPass tells apart the passes of a multi-pass scanner
type ScanPass int

const (
	// ScanPassBody is the main pass, the whole body is visible
	ScanPassBody ScanPass = iota
	// ScanPassHead covers only the head and shoulders
	ScanPassHead
)

var scanPasses = correspondence.New("scanogram.ScanPass", []correspondence.Entry[ScanPass]{
	{Value: ScanPassBody, Name: "body", Label: "whole body"},
	{Value: ScanPassHead, Name: "head", Label: "head and shoulders"},
}...)

func ParseScanPass(s string) (ScanPass, error)  { return scanPasses.FromString(s) }
func ScanPasses() []ScanPass                    { return scanPasses.Values() }
func (p ScanPass) String() string               { return scanPasses.ToString(p) }
func (p ScanPass) UserFriendly() string         { return scanPasses.ToUserFriendly(p) }
func (p ScanPass) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (p *ScanPass) UnmarshalText(b []byte) error {
	v, err := scanPasses.FromString(string(b))
	if err == nil {
		*p = v
	}
	return err
}
