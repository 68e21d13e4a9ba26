// SPDX-License-Identifier: MIT

// Package lda implements Linear Discriminant Analysis, the supervised linear
// projection that maximizes between-class scatter relative to within-class
// scatter.
//
// Fit groups the rows by label and builds
//
//	Sw = Σ_c Σ_{i∈c} (x_i − μ_c)(x_i − μ_c)ᵀ
//	Sb = Σ_c n_c · (μ_c − μ)(μ_c − μ)ᵀ
//
// then solves the generalized eigenproblem Sb·v = λ·Sw·v and keeps the
// nComponents eigenvectors of largest |λ|, each scaled to unit length.
// WithScatter(ScatterUnweighted) switches to Sw = Σ_c Cov_c and unweighted
// Sb, where every class counts once.
//
// Two solvers are available. SolverCholesky (default) factors Sw = L·Lᵀ and
// eigendecomposes the symmetric L⁻¹·Sb·L⁻ᵀ, so every λ is real. SolverGeneral
// eigendecomposes Sw⁻¹·Sb directly and keeps real parts once the imaginary
// ones are shown negligible (WithImagTolerance). Collinear features make Sw
// singular; WithShrinkage(α) adds α·I to it.
//
// Transform returns X·components without centering. At most classes−1
// components carry between-class information; requesting more is allowed
// and logged at warn level.
//
// Errors are sentinels wrapped with the method name; use errors.Is.
package lda
