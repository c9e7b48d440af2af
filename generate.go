package mecabtext

//go:generate mockgen -source=morphology/morphology.go -destination=mock_morphology_test.go -package=mecabtext
//go:generate mockgen -source=storage.go -destination=mock_storage_test.go -package=mecabtext
