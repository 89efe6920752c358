// file: internals/features/content/subjects/route/admin_route.go
package route

import (
	subjectsController "medlearn_backend/internals/features/content/subjects/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD + the tree snapshot.
Mount example: SubjectAdminRoutes(app.Group("/api/admin"), db)
*/
func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &subjectsController.SubjectsController{DB: db}
	subjects := r.Group("/subjects")
	subjects.Get("/tree", ctl.GetTree)      // GET    /api/admin/subjects/tree
	subjects.Get("/", ctl.ListSubjects)     // GET    /api/admin/subjects
	subjects.Post("/", ctl.CreateSubject)   // POST   /api/admin/subjects
	subjects.Get("/:id", ctl.GetSubject)    // GET    /api/admin/subjects/:id
	subjects.Put("/:id", ctl.UpdateSubject) // PUT    /api/admin/subjects/:id
	subjects.Delete("/:id", ctl.DeleteSubject)
}
