package service

import (
	"time"

	"github.com/noah-isme/lms-quiz-api/internal/models"
)

// sampleAssignments returns the demo assignment set used to populate an
// empty database.
func sampleAssignments() []models.Assignment {
	now := time.Now()

	calculus := models.Assignment{
		Title:       "Calculus I - Derivatives and Applications",
		Description: "This assignment covers fundamental concepts of derivatives, including the power rule, chain rule, and applications to optimization problems.",
		DueDate:     now.Add(7 * 24 * time.Hour),
		CreatedAt:   now.Add(-2 * 24 * time.Hour),
	}
	calculus.SetQuestions([]models.Question{
		{
			QuestionNumber: 1,
			QuestionText:   "What is the derivative of f(x) = x³ + 5x² - 3x + 7?",
			Options: []string{
				"3x² + 10x - 3",
				"x² + 5x - 3",
				"3x² + 5x - 3",
				"x³ + 10x - 3",
			},
			CorrectOptions: []int{0},
			Rubric:         "Apply the power rule: d/dx(xⁿ) = nxⁿ⁻¹. For each term, multiply the coefficient by the exponent and reduce the exponent by 1.",
			Marks:          2,
		},
		{
			QuestionNumber: 2,
			QuestionText:   "If f(x) = (x² + 1)⁵, which rule should you use to find the derivative?",
			Options: []string{
				"Power Rule",
				"Chain Rule",
				"Product Rule",
				"Quotient Rule",
			},
			CorrectOptions: []int{1},
			Rubric:         "The Chain Rule is used when you have a function inside another function. Here, (x² + 1) is inside the power function.",
			Marks:          1,
		},
		{
			QuestionNumber: 3,
			QuestionText:   "A rectangular box with a square base has a volume of 64 cm³. What is the minimum surface area?",
			Options: []string{
				"64 cm²",
				"96 cm²",
				"128 cm²",
				"192 cm²",
			},
			CorrectOptions: []int{1},
			Rubric:         "Set up the optimization problem: V = x²h = 64, so h = 64/x². Surface area S = 2x² + 4xh. Substitute h and find the derivative to minimize.",
			Marks:          3,
		},
		{
			QuestionNumber: 4,
			QuestionText:   "What is the derivative of sin(x) with respect to x?",
			Options: []string{
				"cos(x)",
				"-cos(x)",
				"sin(x)",
				"-sin(x)",
			},
			CorrectOptions: []int{0},
			Rubric:         "The derivative of sin(x) is cos(x). This is a fundamental trigonometric derivative that should be memorized.",
			Marks:          1,
		},
		{
			QuestionNumber: 5,
			QuestionText:   "If a function has a local maximum at x = a, what can you say about f'(a)?",
			Options: []string{
				"f'(a) > 0",
				"f'(a) < 0",
				"f'(a) = 0",
				"f'(a) is undefined",
			},
			CorrectOptions: []int{2},
			Rubric:         "At a local maximum, the derivative is zero (horizontal tangent). This is a critical point where the function changes from increasing to decreasing.",
			Marks:          2,
		},
	})

	mechanics := models.Assignment{
		Title:       "Physics I - Newtonian Mechanics",
		Description: "This assignment covers Newton's laws of motion, forces, and energy conservation principles.",
		DueDate:     now.Add(5 * 24 * time.Hour),
		CreatedAt:   now.Add(-1 * 24 * time.Hour),
	}
	mechanics.SetQuestions([]models.Question{
		{
			QuestionNumber: 1,
			QuestionText:   "According to Newton's First Law, an object at rest will:",
			Options: []string{
				"Accelerate if a force is applied",
				"Remain at rest unless acted upon by a net external force",
				"Move with constant velocity",
				"Always experience friction",
			},
			CorrectOptions: []int{1},
			Rubric:         "Newton's First Law states that an object at rest stays at rest, and an object in motion stays in motion with constant velocity, unless acted upon by a net external force.",
			Marks:          2,
		},
		{
			QuestionNumber: 2,
			QuestionText:   "A 10 kg block is pushed with a force of 50 N. If the coefficient of friction is 0.3, what is the acceleration? (g = 10 m/s²)",
			Options: []string{
				"2 m/s²",
				"5 m/s²",
				"8 m/s²",
				"10 m/s²",
			},
			CorrectOptions: []int{0},
			Rubric:         "Calculate: F_net = F_applied - F_friction = 50 - (0.3 × 10 × 10) = 50 - 30 = 20 N. Then a = F_net/m = 20/10 = 2 m/s².",
			Marks:          3,
		},
		{
			QuestionNumber: 3,
			QuestionText:   "Which of the following is a conservative force?",
			Options: []string{
				"Friction",
				"Air resistance",
				"Gravitational force",
				"Normal force",
			},
			CorrectOptions: []int{2},
			Rubric:         "Conservative forces are path-independent and allow for potential energy. Gravity, electric forces, and spring forces are conservative. Friction and air resistance are non-conservative.",
			Marks:          2,
		},
		{
			QuestionNumber: 4,
			QuestionText:   "A ball is thrown upward with initial velocity 20 m/s. What is its velocity at the maximum height?",
			Options: []string{
				"20 m/s upward",
				"0 m/s",
				"20 m/s downward",
				"10 m/s upward",
			},
			CorrectOptions: []int{1},
			Rubric:         "At the maximum height, the vertical velocity is zero. The ball momentarily stops before falling back down due to gravity.",
			Marks:          2,
		},
		{
			QuestionNumber: 5,
			QuestionText:   "In a perfectly elastic collision, which quantity is conserved?",
			Options: []string{
				"Only momentum",
				"Only kinetic energy",
				"Both momentum and kinetic energy",
				"Neither momentum nor kinetic energy",
			},
			CorrectOptions: []int{2},
			Rubric:         "In a perfectly elastic collision, both momentum and kinetic energy are conserved. This is different from inelastic collisions where only momentum is conserved.",
			Marks:          2,
		},
	})

	linearAlgebra := models.Assignment{
		Title:       "Linear Algebra - Matrix Operations",
		Description: "This assignment covers matrix multiplication, determinants, and solving systems of linear equations.",
		DueDate:     now.Add(10 * 24 * time.Hour),
		CreatedAt:   now.Add(-3 * 24 * time.Hour),
	}
	linearAlgebra.SetQuestions([]models.Question{
		{
			QuestionNumber: 1,
			QuestionText:   "What is the determinant of a 2×2 matrix [[a, b], [c, d]]?",
			Options: []string{
				"ad + bc",
				"ad - bc",
				"ab - cd",
				"a + d - b - c",
			},
			CorrectOptions: []int{1},
			Rubric:         "For a 2×2 matrix, the determinant is calculated as ad - bc. This is the product of the main diagonal minus the product of the off-diagonal.",
			Marks:          2,
		},
		{
			QuestionNumber: 2,
			QuestionText:   "For matrix multiplication A × B to be defined, what must be true?",
			Options: []string{
				"A and B must have the same dimensions",
				"The number of columns in A must equal the number of rows in B",
				"The number of rows in A must equal the number of columns in B",
				"A and B must be square matrices",
			},
			CorrectOptions: []int{1},
			Rubric:         "Matrix multiplication requires that the number of columns in the first matrix equals the number of rows in the second matrix. The resulting matrix has dimensions (rows of A) × (columns of B).",
			Marks:          2,
		},
		{
			QuestionNumber: 3,
			QuestionText:   "A system of linear equations has no solution when:",
			Options: []string{
				"The determinant is zero",
				"The system is consistent",
				"The equations are linearly dependent",
				"The system is inconsistent",
			},
			CorrectOptions: []int{3},
			Rubric:         "An inconsistent system has no solution, meaning the equations contradict each other. This can be identified when row reduction leads to a contradiction like 0 = 1.",
			Marks:          2,
		},
		{
			QuestionNumber: 4,
			QuestionText:   "What is the inverse of a matrix A?",
			Options: []string{
				"A matrix B such that A + B = I",
				"A matrix B such that A × B = B × A = I",
				"A matrix B such that A - B = 0",
				"The transpose of A",
			},
			CorrectOptions: []int{1},
			Rubric:         "The inverse of matrix A, denoted A⁻¹, is the matrix such that A × A⁻¹ = A⁻¹ × A = I, where I is the identity matrix. Not all matrices have inverses.",
			Marks:          2,
		},
		{
			QuestionNumber: 5,
			QuestionText:   "What does it mean if the determinant of a matrix is zero?",
			Options: []string{
				"The matrix is invertible",
				"The matrix is singular (not invertible)",
				"All entries are zero",
				"The matrix is symmetric",
			},
			CorrectOptions: []int{1},
			Rubric:         "A matrix with zero determinant is called singular and does not have an inverse. This occurs when the rows (or columns) are linearly dependent.",
			Marks:          2,
		},
	})

	electricity := models.Assignment{
		Title:       "Physics II - Electric Fields and Potential",
		Description: "This assignment covers electric fields, electric potential, and Gauss's law applications.",
		DueDate:     now.Add(6 * 24 * time.Hour),
		CreatedAt:   now.Add(-4 * 24 * time.Hour),
	}
	electricity.SetQuestions([]models.Question{
		{
			QuestionNumber: 1,
			QuestionText:   "What is the direction of the electric field around a positive point charge?",
			Options: []string{
				"Radially inward",
				"Radially outward",
				"Tangential to the charge",
				"No direction (zero field)",
			},
			CorrectOptions: []int{1},
			Rubric:         "The electric field around a positive point charge points radially outward, away from the charge. For a negative charge, it points radially inward.",
			Marks:          2,
		},
		{
			QuestionNumber: 2,
			QuestionText:   "Two point charges of +5 μC and -3 μC are separated by 2 meters. What is the magnitude of the force between them? (k = 9 × 10⁹ N⋅m²/C²)",
			Options: []string{
				"33.75 N",
				"67.5 N",
				"135 N",
				"270 N",
			},
			CorrectOptions: []int{0},
			Rubric:         "Use Coulomb's law: F = k|q₁q₂|/r² = (9×10⁹)(5×10⁻⁶)(3×10⁻⁶)/(2²) = 135×10⁻³/4 = 33.75 N. The force is attractive since charges are opposite.",
			Marks:          3,
		},
		{
			QuestionNumber: 3,
			QuestionText:   "Electric potential is a:",
			Options: []string{
				"Vector quantity",
				"Scalar quantity",
				"Tensor quantity",
				"Dimensionless quantity",
			},
			CorrectOptions: []int{1},
			Rubric:         "Electric potential is a scalar quantity, meaning it has magnitude but no direction. This is different from electric field, which is a vector.",
			Marks:          2,
		},
		{
			QuestionNumber: 4,
			QuestionText:   "According to Gauss's law, the electric flux through a closed surface depends on:",
			Options: []string{
				"The shape of the surface",
				"The size of the surface",
				"The charge enclosed by the surface",
				"The electric field outside the surface",
			},
			CorrectOptions: []int{2},
			Rubric:         "Gauss's law states that the electric flux through a closed surface is proportional to the charge enclosed, regardless of the surface shape or size.",
			Marks:          2,
		},
		{
			QuestionNumber: 5,
			QuestionText:   "What happens to the electric potential energy when two like charges are brought closer together?",
			Options: []string{
				"It increases",
				"It decreases",
				"It remains constant",
				"It becomes zero",
			},
			CorrectOptions: []int{0},
			Rubric:         "For like charges, bringing them closer together increases the potential energy because work must be done against the repulsive force. The system stores more energy.",
			Marks:          2,
		},
	})

	return []models.Assignment{calculus, mechanics, linearAlgebra, electricity}
}
