package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "LUCT Reporting API",
        "description": "Lecture reporting platform for the Faculty of ICT",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Authentication", "description": "Registration, login and profile"},
        {"name": "Reports", "description": "Weekly lecture reports"},
        {"name": "Courses", "description": "Course catalogue"},
        {"name": "Course Management", "description": "Program leader course administration"},
        {"name": "Classes", "description": "Class sections"},
        {"name": "Feedback", "description": "Principal lecturer feedback"},
        {"name": "Search", "description": "Cross-entity search"},
        {"name": "Export", "description": "Report downloads"},
        {"name": "Users", "description": "User directory"}
    ],
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a new account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error or duplicate email", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/profile": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current user profile",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/reports": {
            "get": {
                "tags": ["Reports"],
                "summary": "List lecture reports visible to the caller",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Reports"],
                "summary": "Submit a lecture report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitReportRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Lecturer role required", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/reports/{id}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Fetch one lecture report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Report not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Fetch one course",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/course-management": {
            "post": {
                "tags": ["Course Management"],
                "summary": "Create a course",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error or duplicate code", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Program leader role required", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/course-management/{id}": {
            "put": {
                "tags": ["Course Management"],
                "summary": "Update a course",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/course-management/{id}/assign": {
            "post": {
                "tags": ["Course Management"],
                "summary": "Assign a lecturer to a course",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignLecturerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid lecturer selected", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List classes visible to the caller",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/classes/{id}": {
            "get": {
                "tags": ["Classes"],
                "summary": "Fetch one class",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Class not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/feedback": {
            "post": {
                "tags": ["Feedback"],
                "summary": "Add feedback to a report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateFeedbackRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Report not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/feedback/{id}": {
            "put": {
                "tags": ["Feedback"],
                "summary": "Update a feedback entry",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateFeedbackRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Feedback not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/feedback/report/{reportId}": {
            "get": {
                "tags": ["Feedback"],
                "summary": "List feedback for a report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "reportId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/search": {
            "get": {
                "tags": ["Search"],
                "summary": "Search reports, courses or classes",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "type", "in": "query", "required": true, "type": "string", "enum": ["reports", "courses", "classes"]}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid search type", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/export/reports": {
            "get": {
                "tags": ["Export"],
                "summary": "Export reports for a date range",
                "security": [{"BearerAuth": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "text/csv", "application/pdf"],
                "parameters": [
                    {"name": "startDate", "in": "query", "required": true, "type": "string"},
                    {"name": "endDate", "in": "query", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["xlsx", "csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "404": {"description": "No reports found for the specified date range", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/users/lecturers": {
            "get": {
                "tags": ["Users"],
                "summary": "List lecturers",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "name", "role"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "name": {"type": "string"},
                "role": {"type": "string", "enum": ["student", "lecturer", "principal_lecturer", "program_leader"]},
                "faculty": {"type": "string"},
                "department": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "SubmitReportRequest": {
            "type": "object",
            "required": ["faculty_name", "class_id", "week_of_reporting", "date_of_lecture", "course_id", "actual_students_present", "venue", "scheduled_lecture_time", "topic_taught", "learning_outcomes"],
            "properties": {
                "faculty_name": {"type": "string"},
                "class_id": {"type": "integer"},
                "week_of_reporting": {"type": "string"},
                "date_of_lecture": {"type": "string", "format": "date"},
                "course_id": {"type": "integer"},
                "actual_students_present": {"type": "integer"},
                "venue": {"type": "string"},
                "scheduled_lecture_time": {"type": "string"},
                "topic_taught": {"type": "string"},
                "learning_outcomes": {"type": "string"},
                "recommendations": {"type": "string"}
            }
        },
        "CreateCourseRequest": {
            "type": "object",
            "required": ["course_code", "course_name", "faculty"],
            "properties": {
                "course_code": {"type": "string"},
                "course_name": {"type": "string"},
                "faculty": {"type": "string"}
            }
        },
        "AssignLecturerRequest": {
            "type": "object",
            "required": ["lecturer_id", "class_name"],
            "properties": {
                "lecturer_id": {"type": "integer"},
                "class_name": {"type": "string"},
                "venue": {"type": "string"},
                "scheduled_time": {"type": "string"},
                "total_students": {"type": "integer"}
            }
        },
        "CreateFeedbackRequest": {
            "type": "object",
            "required": ["report_id", "feedback_text"],
            "properties": {
                "report_id": {"type": "integer"},
                "feedback_text": {"type": "string"},
                "rating": {"type": "integer", "minimum": 1, "maximum": 5}
            }
        },
        "UpdateFeedbackRequest": {
            "type": "object",
            "required": ["feedback_text"],
            "properties": {
                "feedback_text": {"type": "string"},
                "rating": {"type": "integer", "minimum": 1, "maximum": 5}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
