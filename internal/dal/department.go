package dal

import "clinicore.io/clinicore/internal/models"

// DepartmentModel reads the department reference collection. Departments
// are read-only in this core: the seed initializer is the only writer.
type DepartmentModel struct {
	cs *CollectionStore
}

// NewDepartmentModel creates a new department model instance
func NewDepartmentModel(cs *CollectionStore) *DepartmentModel {
	return &DepartmentModel{cs: cs}
}

// List returns every department in insertion order.
func (dm *DepartmentModel) List() []models.Department {
	return listCollection[models.Department](dm.cs, DepartmentsKey, "Failed to fetch departments")
}
