package sumcheck

import "github.com/ligerito/ligerito/binaryfield"

// foldVector halves v by folding each pair (left, right) into
// left + r*(right+left), the characteristic-2 form of
// (1-r)*left + r*right.
func foldVector(v []binaryfield.F128, r binaryfield.F128) []binaryfield.F128 {
	half := len(v) / 2
	out := make([]binaryfield.F128, half)
	for i := 0; i < half; i++ {
		out[i] = v[i].Add(r.Mul(v[i+half].Add(v[i])))
	}
	return out
}

// evalFoldedDot computes sum_i fold(f,x)[i] * fold(g,x)[i] without
// materializing the folded vectors, the round polynomial's value at x.
func evalFoldedDot(f, g []binaryfield.F128, x binaryfield.F128) binaryfield.F128 {
	half := len(f) / 2
	var sum binaryfield.F128
	for i := 0; i < half; i++ {
		fx := f[i].Add(x.Mul(f[i+half].Add(f[i])))
		gx := g[i].Add(x.Mul(g[i+half].Add(g[i])))
		sum = sum.Add(fx.Mul(gx))
	}
	return sum
}

// lagrangeEval3 interpolates the unique degree<=2 polynomial through
// (x0,y0), (x1,y1), (x2,y2) and evaluates it at r.
func lagrangeEval3(x0, y0, x1, y1, x2, y2, r binaryfield.F128) binaryfield.F128 {
	term := func(xi, yi, xj, xk binaryfield.F128) binaryfield.F128 {
		num := r.Add(xj).Mul(r.Add(xk))
		den := xi.Add(xj).Mul(xi.Add(xk))
		return yi.Mul(num).Mul(den.Inv())
	}
	t0 := term(x0, y0, x1, x2)
	t1 := term(x1, y1, x0, x2)
	t2 := term(x2, y2, x0, x1)
	return t0.Add(t1).Add(t2)
}
